package usecase

import (
	"io"

	"estatehub/internal/entity"
	"estatehub/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(property *entity.Property) error {
	args := m.Called(property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Update(property *entity.Property) error {
	args := m.Called(property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(id uint) (*entity.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetBySlug(slug string) (*entity.Property, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockPropertyRepository) SlugExists(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockPropertyRepository) List(filter *entity.PropertyFilter) ([]*entity.Property, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Property), args.Get(1).(int64), args.Error(2)
}

var _ persistent.PropertyRepository = (*MockPropertyRepository)(nil)

type MockFacilityRepository struct {
	mock.Mock
}

func (m *MockFacilityRepository) Create(facility *entity.NearbyFacility) error {
	args := m.Called(facility)
	return args.Error(0)
}

func (m *MockFacilityRepository) GetByID(id uint) (*entity.NearbyFacility, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NearbyFacility), args.Error(1)
}

func (m *MockFacilityRepository) GetByProperty(propertyID uint) ([]*entity.NearbyFacility, error) {
	args := m.Called(propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.NearbyFacility), args.Error(1)
}

func (m *MockFacilityRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.FacilityRepository = (*MockFacilityRepository)(nil)

type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(inquiry *entity.Inquiry) error {
	args := m.Called(inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) GetByID(id uint) (*entity.Inquiry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) List(status string, limit, offset int) ([]*entity.Inquiry, int64, error) {
	args := m.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Inquiry), args.Get(1).(int64), args.Error(2)
}

func (m *MockInquiryRepository) UpdateStatus(id uint, status entity.InquiryStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockInquiryRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.InquiryRepository = (*MockInquiryRepository)(nil)

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(media *entity.PropertyMedia) error {
	args := m.Called(media)
	return args.Error(0)
}

func (m *MockMediaRepository) GetByID(id uint) (*entity.PropertyMedia, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PropertyMedia), args.Error(1)
}

func (m *MockMediaRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMediaRepository) SetFeatured(propertyID, mediaID uint) error {
	args := m.Called(propertyID, mediaID)
	return args.Error(0)
}

func (m *MockMediaRepository) NextOrderIndex(propertyID uint) (int, error) {
	args := m.Called(propertyID)
	return args.Int(0), args.Error(1)
}

var _ persistent.MediaRepository = (*MockMediaRepository)(nil)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Upload(key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStore) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

var _ MediaStore = (*MockMediaStore)(nil)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PublishInquiryEvent(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

var _ Notifier = (*MockNotifier)(nil)

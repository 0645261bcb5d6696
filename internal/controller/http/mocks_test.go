package http

import (
	"bytes"
	"mime/multipart"

	"estatehub/internal/entity"
	"estatehub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newJSONBody(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}

type MockPropertyUseCase struct {
	mock.Mock
}

func (m *MockPropertyUseCase) List(filter *entity.PropertyFilter) ([]*entity.Property, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Property), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyUseCase) Featured(limit int) ([]*entity.Property, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Property), args.Error(1)
}

func (m *MockPropertyUseCase) GetBySlug(slug string) (*entity.Property, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockPropertyUseCase) GetByID(id uint) (*entity.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockPropertyUseCase) Create(input usecase.CreatePropertyInput) (*entity.Property, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockPropertyUseCase) Update(id uint, input usecase.UpdatePropertyInput) (*entity.Property, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockPropertyUseCase) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.PropertyUseCase = (*MockPropertyUseCase)(nil)

type MockFacilityUseCase struct {
	mock.Mock
}

func (m *MockFacilityUseCase) Create(propertyID uint, input usecase.CreateFacilityInput) (*entity.NearbyFacility, error) {
	args := m.Called(propertyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NearbyFacility), args.Error(1)
}

func (m *MockFacilityUseCase) Nearby(propertyID uint, radiusKm float64, facilityType string) ([]*entity.NearbyFacility, error) {
	args := m.Called(propertyID, radiusKm, facilityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.NearbyFacility), args.Error(1)
}

func (m *MockFacilityUseCase) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.FacilityUseCase = (*MockFacilityUseCase)(nil)

type MockInquiryUseCase struct {
	mock.Mock
}

func (m *MockInquiryUseCase) Create(input usecase.CreateInquiryInput) (*entity.Inquiry, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inquiry), args.Error(1)
}

func (m *MockInquiryUseCase) List(status string, page, limit int) ([]*entity.Inquiry, int64, error) {
	args := m.Called(status, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Inquiry), args.Get(1).(int64), args.Error(2)
}

func (m *MockInquiryUseCase) UpdateStatus(id uint, status entity.InquiryStatus) (*entity.Inquiry, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inquiry), args.Error(1)
}

func (m *MockInquiryUseCase) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.InquiryUseCase = (*MockInquiryUseCase)(nil)

type MockMediaUseCase struct {
	mock.Mock
}

func (m *MockMediaUseCase) Upload(propertyID uint, file *multipart.FileHeader) (*entity.PropertyMedia, error) {
	args := m.Called(propertyID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PropertyMedia), args.Error(1)
}

func (m *MockMediaUseCase) SetFeatured(propertyID, mediaID uint) error {
	args := m.Called(propertyID, mediaID)
	return args.Error(0)
}

func (m *MockMediaUseCase) Delete(mediaID uint) error {
	args := m.Called(mediaID)
	return args.Error(0)
}

var _ usecase.MediaUseCase = (*MockMediaUseCase)(nil)

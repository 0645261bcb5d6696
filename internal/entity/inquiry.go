package entity

import "time"

type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryContacted InquiryStatus = "contacted"
	InquiryResolved  InquiryStatus = "resolved"
)

var validInquiryStatuses = map[InquiryStatus]bool{
	InquiryNew: true, InquiryContacted: true, InquiryResolved: true,
}

func (s InquiryStatus) Valid() bool { return validInquiryStatuses[s] }

// Inquiry is a contact-form submission. PropertyID is nil for general
// inquiries not tied to a listing.
type Inquiry struct {
	ID         uint          `json:"id"`
	PropertyID *uint         `json:"property_id,omitempty"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	Message    string        `json:"message"`
	Status     InquiryStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

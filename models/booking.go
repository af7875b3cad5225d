package models

import "time"

// BookingStatus is the lifecycle state of a booking. ACCEPTED and
// REJECTED are terminal.
type BookingStatus string

const (
	BookingPending  BookingStatus = "PENDING"
	BookingAccepted BookingStatus = "ACCEPTED"
	BookingRejected BookingStatus = "REJECTED"
)

// TerminalStatus reports whether s admits no further transition.
func TerminalStatus(s BookingStatus) bool {
	return s == BookingAccepted || s == BookingRejected
}

// Booking represents a single service request from creation through the
// provider decision. Records are never deleted; the status is the record
// of the outcome.
type Booking struct {
	ID          string          `bson:"id" json:"id"`
	CustomerID  string          `bson:"customer_id" json:"customerId"`
	Category    ServiceCategory `bson:"category" json:"category"`
	Subcategory string          `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	RequestedAt time.Time       `bson:"requested_at" json:"requestedAt"`
	Location    string          `bson:"location" json:"location"`
	Notes       string          `bson:"notes,omitempty" json:"notes,omitempty"`
	Status      BookingStatus   `bson:"status" json:"status"`
	ProviderID  string          `bson:"provider_id,omitempty" json:"providerId,omitempty"`
	CreatedAt   time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updatedAt"`
}

// BookingRequest is the input for creating a booking.
type BookingRequest struct {
	Category    ServiceCategory `json:"category" binding:"required"`
	Subcategory string          `json:"subcategory"`
	RequestedAt time.Time       `json:"requestedAt" binding:"required"`
	Location    string          `json:"location" binding:"required"`
	Notes       string          `json:"notes"`
}

// DecisionRequest is the input for a provider decision on a pending
// booking. Outcome must be ACCEPTED or REJECTED.
type DecisionRequest struct {
	Outcome BookingStatus `json:"outcome" binding:"required"`
}

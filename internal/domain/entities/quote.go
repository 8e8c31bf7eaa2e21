package entities

import "time"

// QuoteStatus tracks what happened to a website quote request.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusConverted QuoteStatus = "converted"
	QuoteStatusDeclined  QuoteStatus = "declined"
)

// Quote is a quote request submitted through the public marketing site.
// It is intake only; converting one into a customer and job happens in the
// back office.
type Quote struct {
	ID                 string      `json:"id"`
	FirstName          string      `json:"first_name"`
	LastName           string      `json:"last_name"`
	Email              string      `json:"email"`
	Phone              string      `json:"phone"`
	ServiceType        string      `json:"service_type"`
	OriginAddress      string      `json:"origin_address"`
	DestinationAddress string      `json:"destination_address"`
	MoveDate           string      `json:"move_date"`
	EstimatedBoxes     int         `json:"estimated_boxes,omitempty"`
	SpecialItems       string      `json:"special_items,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	Status             QuoteStatus `json:"status"`
	CreatedAt          time.Time   `json:"created_at"`
}

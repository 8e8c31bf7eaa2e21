package response

import (
	"time"

	"meridian_moving/internal/domain/entities"
)

type QuoteResponse struct {
	ID                 string    `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	ServiceType        string    `json:"service_type"`
	OriginAddress      string    `json:"origin_address,omitempty"`
	DestinationAddress string    `json:"destination_address,omitempty"`
	MoveDate           string    `json:"move_date,omitempty"`
	EstimatedBoxes     int       `json:"estimated_boxes,omitempty"`
	SpecialItems       string    `json:"special_items,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                 q.ID,
		FirstName:          q.FirstName,
		LastName:           q.LastName,
		Email:              q.Email,
		Phone:              q.Phone,
		ServiceType:        q.ServiceType,
		OriginAddress:      q.OriginAddress,
		DestinationAddress: q.DestinationAddress,
		MoveDate:           q.MoveDate,
		EstimatedBoxes:     q.EstimatedBoxes,
		SpecialItems:       q.SpecialItems,
		Notes:              q.Notes,
		Status:             string(q.Status),
		CreatedAt:          q.CreatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromContact(c entities.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

func FromContacts(contacts []entities.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, FromContact(c))
	}
	return out
}

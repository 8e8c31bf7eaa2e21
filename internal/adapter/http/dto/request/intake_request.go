package request

import "meridian_moving/internal/domain/entities"

// QuoteRequest is the payload of the public quote form.
type QuoteRequest struct {
	FirstName          string `json:"first_name" binding:"required"`
	LastName           string `json:"last_name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Phone              string `json:"phone" binding:"required"`
	ServiceType        string `json:"service_type" binding:"required"`
	OriginAddress      string `json:"origin_address"`
	DestinationAddress string `json:"destination_address"`
	MoveDate           string `json:"move_date"`
	EstimatedBoxes     int    `json:"estimated_boxes" binding:"omitempty,gte=0"`
	SpecialItems       string `json:"special_items"`
	Notes              string `json:"notes"`
}

func (r QuoteRequest) ToEntity() entities.Quote {
	return entities.Quote{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Email:              r.Email,
		Phone:              r.Phone,
		ServiceType:        r.ServiceType,
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		MoveDate:           r.MoveDate,
		EstimatedBoxes:     r.EstimatedBoxes,
		SpecialItems:       r.SpecialItems,
		Notes:              r.Notes,
	}
}

// ContactRequest is the payload of the public contact form.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequest) ToEntity() entities.Contact {
	return entities.Contact{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

package request

import "meridian_moving/internal/domain/entities"

type CustomerRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone" binding:"required"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	ReferralSource string `json:"referral_source"`
	Notes          string `json:"notes"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		Zip:            r.Zip,
		ReferralSource: r.ReferralSource,
		Notes:          r.Notes,
	}
}

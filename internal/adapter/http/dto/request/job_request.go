package request

import (
	"errors"
	"time"

	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/domain/tariff"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

const dateLayout = "2006-01-02"

// JobRequest is the payload for creating or updating a job. Money fields are
// dollars on the wire; the entity stores cents.
type JobRequest struct {
	CustomerID         string  `json:"customer_id"`
	Title              string  `json:"title" binding:"required"`
	Description        string  `json:"description"`
	OriginAddress      string  `json:"origin_address"`
	DestinationAddress string  `json:"destination_address"`
	PreferredDate      string  `json:"preferred_date"`
	CrewSize           int     `json:"crew_size" binding:"omitempty,min=1,max=5"`
	EstimatedHours     float64 `json:"estimated_hours" binding:"omitempty,gt=0"`
	TotalDistance      float64 `json:"total_distance" binding:"omitempty,gte=0"`
	BoxCountQuoted     int     `json:"box_count_quoted" binding:"omitempty,gte=0"`
	MattressBagCount   int     `json:"mattress_bag_count" binding:"omitempty,gte=0"`
	MaterialsCost      float64 `json:"materials_cost" binding:"omitempty,gte=0"`
	IsOddJob           bool    `json:"is_odd_job"`
	IsLaborOnly        bool    `json:"is_labor_only"`
	IsWeekend          bool    `json:"is_weekend"`
	IsHoliday          bool    `json:"is_holiday"`
}

func (r JobRequest) ToEntity() (entities.Job, error) {
	preferred, err := parseDate(r.PreferredDate)
	if err != nil {
		return entities.Job{}, err
	}

	return entities.Job{
		CustomerID:         r.CustomerID,
		Title:              r.Title,
		Description:        r.Description,
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		PreferredDate:      preferred,
		CrewSize:           r.CrewSize,
		EstimatedHours:     r.EstimatedHours,
		TotalDistance:      r.TotalDistance,
		BoxCountQuoted:     r.BoxCountQuoted,
		MattressBagCount:   r.MattressBagCount,
		MaterialsCost:      tariff.FromDollars(r.MaterialsCost),
		IsOddJob:           r.IsOddJob,
		IsLaborOnly:        r.IsLaborOnly,
		IsWeekend:          r.IsWeekend,
		IsHoliday:          r.IsHoliday,
	}, nil
}

// PricingRequest prices a hypothetical job without persisting anything. It
// feeds the quote calculator on the back-office estimate screen.
type PricingRequest struct {
	CrewSize         int     `json:"crew_size" binding:"required,min=1,max=5"`
	Hours            float64 `json:"hours" binding:"required,gt=0"`
	DistanceMiles    float64 `json:"distance_miles" binding:"omitempty,gte=0"`
	BoxCount         int     `json:"box_count" binding:"omitempty,gte=0"`
	MattressBagCount int     `json:"mattress_bag_count" binding:"omitempty,gte=0"`
	MaterialsCost    float64 `json:"materials_cost" binding:"omitempty,gte=0"`
	IsOddJob         bool    `json:"is_odd_job"`
	IsLaborOnly      bool    `json:"is_labor_only"`
	JobDate          string  `json:"job_date"`
	IsWeekend        bool    `json:"is_weekend"`
	IsHoliday        bool    `json:"is_holiday"`
}

// ToEstimateInput resolves the pricing date, falling back to now when the
// payload left it out.
func (r PricingRequest) ToEstimateInput(now time.Time) (tariff.EstimateInput, error) {
	jobDate, err := parseDate(r.JobDate)
	if err != nil {
		return tariff.EstimateInput{}, err
	}
	if jobDate.IsZero() {
		jobDate = now
	}

	return tariff.EstimateInput{
		CrewSize:         r.CrewSize,
		EstimatedHours:   r.Hours,
		DistanceMiles:    r.DistanceMiles,
		BoxCountQuoted:   r.BoxCount,
		MattressBagCount: r.MattressBagCount,
		MaterialsCost:    tariff.FromDollars(r.MaterialsCost),
		IsOddJob:         r.IsOddJob,
		IsLaborOnly:      r.IsLaborOnly,
		JobDate:          jobDate,
		IsWeekend:        r.IsWeekend,
		IsHoliday:        r.IsHoliday,
	}, nil
}

type StatusChangeRequest struct {
	Status string `json:"status" binding:"required"`
}

type FinalizeJobRequest struct {
	ActualHours    float64 `json:"actual_hours" binding:"required,gt=0"`
	ActualBoxCount int     `json:"actual_box_count" binding:"omitempty,gte=0"`
	MaterialsCost  float64 `json:"materials_cost" binding:"omitempty,gte=0"`
}

func (r FinalizeJobRequest) MaterialsCents() tariff.Cents {
	return tariff.FromDollars(r.MaterialsCost)
}

// ExpensesRequest carries job expenses in dollars for profit analysis.
type ExpensesRequest struct {
	CrewPay       float64 `json:"crew_pay" binding:"omitempty,gte=0"`
	FuelCost      float64 `json:"fuel_cost" binding:"omitempty,gte=0"`
	RentalCost    float64 `json:"rental_cost" binding:"omitempty,gte=0"`
	MaterialsCost float64 `json:"materials_cost" binding:"omitempty,gte=0"`
	Other         float64 `json:"other" binding:"omitempty,gte=0"`
}

func (r ExpensesRequest) ToExpenses() tariff.Expenses {
	return tariff.Expenses{
		CrewPay:       tariff.FromDollars(r.CrewPay),
		FuelCost:      tariff.FromDollars(r.FuelCost),
		RentalCost:    tariff.FromDollars(r.RentalCost),
		MaterialsCost: tariff.FromDollars(r.MaterialsCost),
		Other:         tariff.FromDollars(r.Other),
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

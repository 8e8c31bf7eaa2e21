package entities

import (
	"fmt"
	"math/rand/v2"
	"time"

	"meridian_moving/internal/domain/tariff"
)

// Job is a move persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Status changes go through the JobStatus transition table only; nothing
// else mutates Status. The money fields are written by the tariff engine
// whenever the job is priced and a fresh breakdown replaces the prior one
// wholesale.
type Job struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	Status        JobStatus `json:"status"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	JobNumber     string    `json:"job_number"`
	InvoiceNumber string    `json:"invoice_number,omitempty"`

	OriginAddress      string `json:"origin_address"`
	DestinationAddress string `json:"destination_address"`

	PreferredDate time.Time `json:"preferred_date,omitempty"`

	// Tariff inputs.
	CrewSize         int     `json:"crew_size"`
	EstimatedHours   float64 `json:"estimated_hours"`
	ActualHours      float64 `json:"actual_hours"`
	TotalDistance    float64 `json:"total_distance"`
	BoxCountQuoted   int     `json:"box_count_quoted"`
	BoxCountActual   int     `json:"box_count_actual"`
	MattressBagCount int     `json:"mattress_bag_count"`
	IsOddJob         bool    `json:"is_odd_job"`
	IsLaborOnly      bool    `json:"is_labor_only"`
	IsWeekend        bool    `json:"is_weekend"`
	IsHoliday        bool    `json:"is_holiday"`

	// Tariff outputs, in cents.
	HourlyRate     tariff.Cents `json:"hourly_rate"`
	LaborCost      tariff.Cents `json:"labor_cost"`
	TravelFee      tariff.Cents `json:"travel_fee"`
	MileageFee     tariff.Cents `json:"mileage_fee"`
	BoxOverageFee  tariff.Cents `json:"box_overage_fee"`
	MattressBagFee tariff.Cents `json:"mattress_bag_fee"`
	MaterialsCost  tariff.Cents `json:"materials_cost"`
	TotalEstimate  tariff.Cents `json:"total_estimate"`
	TotalActual    tariff.Cents `json:"total_actual"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PricingDate returns the date the tariff engine should price against:
// the preferred move date when set, otherwise the supplied fallback.
func (j Job) PricingDate(fallback time.Time) time.Time {
	if !j.PreferredDate.IsZero() {
		return j.PreferredDate
	}
	return fallback
}

// NewJobNumber builds a dispatch reference like MV250712-042.
func NewJobNumber(now time.Time) string {
	return fmt.Sprintf("MV%s-%03d", now.Format("060102"), rand.IntN(1000))
}

// NewInvoiceNumber builds an invoice reference like INV-202507-0042.
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%04d", now.Format("200601"), rand.IntN(10000))
}

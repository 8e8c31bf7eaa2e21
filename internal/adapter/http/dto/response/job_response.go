package response

import (
	"time"

	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/domain/tariff"
)

// JobResponse is a job with its tariff breakdown in dollars and the lifecycle
// affordances the back-office UI needs (display name, badge color, next
// statuses).
type JobResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	JobNumber     string `json:"job_number"`
	InvoiceNumber string `json:"invoice_number,omitempty"`

	Status        string   `json:"status"`
	StatusDisplay string   `json:"status_display"`
	StatusColor   string   `json:"status_color"`
	NextStatuses  []string `json:"next_statuses"`

	OriginAddress      string `json:"origin_address,omitempty"`
	DestinationAddress string `json:"destination_address,omitempty"`
	PreferredDate      string `json:"preferred_date,omitempty"`

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

	HourlyRate     float64 `json:"hourly_rate"`
	LaborCost      float64 `json:"labor_cost"`
	TravelFee      float64 `json:"travel_fee"`
	MileageFee     float64 `json:"mileage_fee"`
	BoxOverageFee  float64 `json:"box_overage_fee"`
	MattressBagFee float64 `json:"mattress_bag_fee"`
	MaterialsCost  float64 `json:"materials_cost"`
	TotalEstimate  float64 `json:"total_estimate"`
	TotalActual    float64 `json:"total_actual"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	next := j.Status.NextValidStatuses()
	nextStrings := make([]string, 0, len(next))
	for _, s := range next {
		nextStrings = append(nextStrings, string(s))
	}

	preferred := ""
	if !j.PreferredDate.IsZero() {
		preferred = j.PreferredDate.Format("2006-01-02")
	}

	return JobResponse{
		ID:                 j.ID,
		CustomerID:         j.CustomerID,
		Title:              j.Title,
		Description:        j.Description,
		JobNumber:          j.JobNumber,
		InvoiceNumber:      j.InvoiceNumber,
		Status:             string(j.Status),
		StatusDisplay:      j.Status.DisplayName(),
		StatusColor:        j.Status.ColorClass(),
		NextStatuses:       nextStrings,
		OriginAddress:      j.OriginAddress,
		DestinationAddress: j.DestinationAddress,
		PreferredDate:      preferred,
		CrewSize:           j.CrewSize,
		EstimatedHours:     j.EstimatedHours,
		ActualHours:        j.ActualHours,
		TotalDistance:      j.TotalDistance,
		BoxCountQuoted:     j.BoxCountQuoted,
		BoxCountActual:     j.BoxCountActual,
		MattressBagCount:   j.MattressBagCount,
		IsOddJob:           j.IsOddJob,
		IsLaborOnly:        j.IsLaborOnly,
		IsWeekend:          j.IsWeekend,
		IsHoliday:          j.IsHoliday,
		HourlyRate:         j.HourlyRate.Dollars(),
		LaborCost:          j.LaborCost.Dollars(),
		TravelFee:          j.TravelFee.Dollars(),
		MileageFee:         j.MileageFee.Dollars(),
		BoxOverageFee:      j.BoxOverageFee.Dollars(),
		MattressBagFee:     j.MattressBagFee.Dollars(),
		MaterialsCost:      j.MaterialsCost.Dollars(),
		TotalEstimate:      j.TotalEstimate.Dollars(),
		TotalActual:        j.TotalActual.Dollars(),
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

// PricingResponse is a standalone tariff breakdown in dollars.
type PricingResponse struct {
	LaborCost      float64 `json:"labor_cost"`
	TravelFee      float64 `json:"travel_fee"`
	MileageFee     float64 `json:"mileage_fee"`
	BoxOverageFee  float64 `json:"box_overage_fee"`
	MattressBagFee float64 `json:"mattress_bag_fee"`
	MaterialsCost  float64 `json:"materials_cost"`
	Total          float64 `json:"total"`

	HourlyRate    float64 `json:"hourly_rate"`
	MinimumHours  float64 `json:"minimum_hours"`
	BillableHours float64 `json:"billable_hours"`
}

func FromBreakdown(b tariff.Breakdown) PricingResponse {
	return PricingResponse{
		LaborCost:      b.LaborCost.Dollars(),
		TravelFee:      b.TravelFee.Dollars(),
		MileageFee:     b.MileageFee.Dollars(),
		BoxOverageFee:  b.BoxOverageFee.Dollars(),
		MattressBagFee: b.MattressBagFee.Dollars(),
		MaterialsCost:  b.MaterialsCost.Dollars(),
		Total:          b.Total.Dollars(),
		HourlyRate:     b.Labor.HourlyRate.Dollars(),
		MinimumHours:   b.Labor.MinimumHours,
		BillableHours:  b.Labor.BillableHours,
	}
}

// ProfitResponse reports job profitability in dollars.
type ProfitResponse struct {
	Revenue       float64 `json:"revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	Profit        float64 `json:"profit"`
	ProfitMargin  float64 `json:"profit_margin"`
}

func FromProfitReport(r tariff.ProfitReport) ProfitResponse {
	return ProfitResponse{
		Revenue:       (r.Profit + r.TotalExpenses).Dollars(),
		TotalExpenses: r.TotalExpenses.Dollars(),
		Profit:        r.Profit.Dollars(),
		ProfitMargin:  r.ProfitMargin,
	}
}

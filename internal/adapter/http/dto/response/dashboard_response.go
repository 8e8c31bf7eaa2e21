package response

import "meridian_moving/internal/usecase"

// DashboardStatsResponse mirrors DashboardStats with money in dollars.
type DashboardStatsResponse struct {
	TotalCustomers          int     `json:"total_customers"`
	TotalJobs               int     `json:"total_jobs"`
	ActiveJobs              int     `json:"active_jobs"`
	CompletedJobs           int     `json:"completed_jobs"`
	BookedJobs              int     `json:"booked_jobs"`
	EstimateJobs            int     `json:"estimate_jobs"`
	MonthlyJobs             int     `json:"monthly_jobs"`
	ActualRevenue           float64 `json:"actual_revenue"`
	PotentialRevenue        float64 `json:"potential_revenue"`
	TotalRevenue            float64 `json:"total_revenue"`
	MonthlyRevenue          float64 `json:"monthly_revenue"`
	MonthlyPotentialRevenue float64 `json:"monthly_potential_revenue"`
	AverageJobValue         float64 `json:"average_job_value"`
}

func FromDashboardStats(s usecase.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalCustomers:          s.TotalCustomers,
		TotalJobs:               s.TotalJobs,
		ActiveJobs:              s.ActiveJobs,
		CompletedJobs:           s.CompletedJobs,
		BookedJobs:              s.BookedJobs,
		EstimateJobs:            s.EstimateJobs,
		MonthlyJobs:             s.MonthlyJobs,
		ActualRevenue:           s.ActualRevenue.Dollars(),
		PotentialRevenue:        s.PotentialRevenue.Dollars(),
		TotalRevenue:            s.TotalRevenue.Dollars(),
		MonthlyRevenue:          s.MonthlyRevenue.Dollars(),
		MonthlyPotentialRevenue: s.MonthlyPotentialRevenue.Dollars(),
		AverageJobValue:         s.AverageJobValue.Dollars(),
	}
}

type MonthFinancialsResponse struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
	Jobs     int     `json:"jobs"`
}

func FromMonthFinancials(months []usecase.MonthFinancials) []MonthFinancialsResponse {
	out := make([]MonthFinancialsResponse, 0, len(months))
	for _, m := range months {
		out = append(out, MonthFinancialsResponse{
			Month:    m.Month,
			Revenue:  m.Revenue.Dollars(),
			Expenses: m.Expenses.Dollars(),
			Profit:   m.Profit.Dollars(),
			Jobs:     m.Jobs,
		})
	}
	return out
}

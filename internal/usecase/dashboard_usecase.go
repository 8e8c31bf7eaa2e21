package usecase

import (
	"context"
	"time"

	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/domain/tariff"
	"meridian_moving/internal/usecase/interfaces"
)

// DashboardStats summarizes the pipeline for the admin dashboard. Revenue is
// split between money already earned (completed and paid jobs) and money
// still in play (estimates and bookings).
type DashboardStats struct {
	TotalCustomers          int          `json:"total_customers"`
	TotalJobs               int          `json:"total_jobs"`
	ActiveJobs              int          `json:"active_jobs"`
	CompletedJobs           int          `json:"completed_jobs"`
	BookedJobs              int          `json:"booked_jobs"`
	EstimateJobs            int          `json:"estimate_jobs"`
	MonthlyJobs             int          `json:"monthly_jobs"`
	ActualRevenue           tariff.Cents `json:"actual_revenue"`
	PotentialRevenue        tariff.Cents `json:"potential_revenue"`
	TotalRevenue            tariff.Cents `json:"total_revenue"`
	MonthlyRevenue          tariff.Cents `json:"monthly_revenue"`
	MonthlyPotentialRevenue tariff.Cents `json:"monthly_potential_revenue"`
	AverageJobValue         tariff.Cents `json:"average_job_value"`
}

// MonthFinancials is one month's revenue/expense line in the yearly report.
type MonthFinancials struct {
	Month    string       `json:"month"`
	Revenue  tariff.Cents `json:"revenue"`
	Expenses tariff.Cents `json:"expenses"`
	Profit   tariff.Cents `json:"profit"`
	Jobs     int          `json:"jobs"`
}

// IDashboardUseCase aggregates jobs and customers into dashboard figures.

type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
	Financials(ctx context.Context, year int) ([]MonthFinancials, error)
}

type DashboardUseCase struct {
	jobRepo      interfaces.IJobRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(jobRepo interfaces.IJobRepository, customerRepo interfaces.ICustomerRepository) *DashboardUseCase {
	return &DashboardUseCase{jobRepo: jobRepo, customerRepo: customerRepo}
}

// revenueOf is the collectible value of a job: the finalized total when the
// move has been reconciled, otherwise the estimate.
func revenueOf(j entities.Job) tariff.Cents {
	if j.TotalActual > 0 {
		return j.TotalActual
	}
	return j.TotalEstimate
}

func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	jobs, err := u.jobRepo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	customers, err := u.customerRepo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats := DashboardStats{
		TotalCustomers: len(customers),
		TotalJobs:      len(jobs),
	}

	var earnedJobs int
	for _, j := range jobs {
		switch j.Status {
		case entities.JobStatusActive:
			stats.ActiveJobs++
		case entities.JobStatusBooked:
			stats.BookedJobs++
			stats.PotentialRevenue += revenueOf(j)
		case entities.JobStatusEstimate:
			stats.EstimateJobs++
			stats.PotentialRevenue += revenueOf(j)
		case entities.JobStatusCompleted, entities.JobStatusPaid:
			stats.CompletedJobs++
			earnedJobs++
			stats.ActualRevenue += revenueOf(j)
		}

		if !j.CreatedAt.Before(monthStart) {
			stats.MonthlyJobs++
			switch j.Status {
			case entities.JobStatusCompleted, entities.JobStatusPaid:
				stats.MonthlyRevenue += revenueOf(j)
			case entities.JobStatusBooked, entities.JobStatusEstimate:
				stats.MonthlyPotentialRevenue += revenueOf(j)
			}
		}
	}

	stats.TotalRevenue = stats.ActualRevenue + stats.PotentialRevenue
	if earnedJobs > 0 {
		stats.AverageJobValue = stats.ActualRevenue / tariff.Cents(earnedJobs)
	}

	return stats, nil
}

// Financials builds a month-by-month revenue/expense/profit series for the
// given year from completed and paid jobs.
func (u *DashboardUseCase) Financials(ctx context.Context, year int) ([]MonthFinancials, error) {
	jobs, err := u.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	months := make([]MonthFinancials, 12)
	for m := range months {
		months[m].Month = time.Month(m + 1).String()[:3]
	}

	for _, j := range jobs {
		if j.Status != entities.JobStatusCompleted && j.Status != entities.JobStatusPaid {
			continue
		}
		if j.CreatedAt.Year() != year {
			continue
		}
		m := int(j.CreatedAt.Month()) - 1
		months[m].Revenue += revenueOf(j)
		months[m].Expenses += j.MaterialsCost
		months[m].Profit = months[m].Revenue - months[m].Expenses
		months[m].Jobs++
	}

	return months, nil
}

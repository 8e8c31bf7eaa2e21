package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/domain/tariff"
	"meridian_moving/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound             = errors.New("job not found")
	ErrInvalidJobID            = errors.New("invalid job id")
	ErrInvalidJobInput         = errors.New("invalid job input")
	ErrInvalidJobStatus        = errors.New("invalid job status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// StatusTransitionError reports a rejected status change together with the
// statuses the job could move to instead. It unwraps to
// ErrInvalidStatusTransition.
type StatusTransitionError struct {
	From    entities.JobStatus
	To      entities.JobStatus
	Allowed []entities.JobStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot move job from %s to %s", e.From, e.To)
}

func (e *StatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// FinalizeJobInput carries the post-move reconciliation figures.
type FinalizeJobInput struct {
	ActualHours    float64
	ActualBoxCount int
	MaterialsCost  tariff.Cents
}

// IJobUseCase exposes the job pipeline operations:
//   - create/update with automatic tariff pricing
//   - lifecycle-gated status changes
//   - post-move finalization (actual hours, box overage) and profit analysis

type IJobUseCase interface {
	CreateJob(ctx context.Context, j entities.Job) (entities.Job, error)
	GetJob(ctx context.Context, id string) (entities.Job, error)
	ListJobs(ctx context.Context) ([]entities.Job, error)
	ListJobsByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error)
	ListJobsByCustomer(ctx context.Context, customerID string) ([]entities.Job, error)
	UpdateJob(ctx context.Context, id string, j entities.Job) (entities.Job, error)
	ChangeStatus(ctx context.Context, id string, target entities.JobStatus) (entities.Job, error)
	FinalizeJob(ctx context.Context, id string, in FinalizeJobInput) (entities.Job, error)
	ProfitAnalysis(ctx context.Context, id string, expenses tariff.Expenses) (tariff.ProfitReport, error)
	DeleteJob(ctx context.Context, id string) error
}

type JobUseCase struct {
	repo         interfaces.IJobRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, customerRepo interfaces.ICustomerRepository) *JobUseCase {
	return &JobUseCase{repo: repo, customerRepo: customerRepo}
}

func (u *JobUseCase) CreateJob(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.CustomerID = strings.TrimSpace(j.CustomerID)
	j.Title = strings.TrimSpace(j.Title)
	if j.CustomerID == "" || j.Title == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	customer, err := u.customerRepo.GetByID(ctx, j.CustomerID)
	if err != nil {
		return entities.Job{}, err
	}
	if customer.ID == "" {
		return entities.Job{}, ErrCustomerNotFound
	}

	now := time.Now().UTC()
	j.ID = uuid.NewString()
	j.Status = entities.JobStatusLead
	j.JobNumber = entities.NewJobNumber(now)
	j.CreatedAt = now
	j.UpdatedAt = now

	if priceable(j) {
		applyEstimate(&j, now)
		log.Printf("[job][usecase] priced new job job_id=%s crew=%d total_estimate=%s", j.ID, j.CrewSize, j.TotalEstimate)
	}

	return u.repo.Create(ctx, j)
}

func (u *JobUseCase) GetJob(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) ListJobs(ctx context.Context) ([]entities.Job, error) {
	return u.repo.List(ctx)
}

func (u *JobUseCase) ListJobsByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error) {
	if _, ok := entities.ParseJobStatus(string(status)); !ok {
		return nil, ErrInvalidJobStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *JobUseCase) ListJobsByCustomer(ctx context.Context, customerID string) ([]entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// UpdateJob replaces a job's editable fields and reprices it. Identity,
// status, job number, creation time and finalization figures always survive
// from the stored job; the new tariff breakdown replaces the previous one.
func (u *JobUseCase) UpdateJob(ctx context.Context, id string, j entities.Job) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if strings.TrimSpace(j.Title) == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if existing.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	j.ID = existing.ID
	j.Status = existing.Status
	j.JobNumber = existing.JobNumber
	j.InvoiceNumber = existing.InvoiceNumber
	j.CreatedAt = existing.CreatedAt
	j.ActualHours = existing.ActualHours
	j.BoxCountActual = existing.BoxCountActual
	j.BoxOverageFee = existing.BoxOverageFee
	j.TotalActual = existing.TotalActual
	if strings.TrimSpace(j.CustomerID) == "" {
		j.CustomerID = existing.CustomerID
	}

	now := time.Now().UTC()
	j.UpdatedAt = now
	if priceable(j) {
		applyEstimate(&j, now)
	}

	return u.repo.Update(ctx, j)
}

func (u *JobUseCase) ChangeStatus(ctx context.Context, id string, target entities.JobStatus) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if _, ok := entities.ParseJobStatus(string(target)); !ok {
		return entities.Job{}, ErrInvalidJobStatus
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	if !j.Status.CanTransitionTo(target) {
		log.Printf("[job][usecase] rejected status change job_id=%s from=%s to=%s", j.ID, j.Status, target)
		return entities.Job{}, &StatusTransitionError{
			From:    j.Status,
			To:      target,
			Allowed: j.Status.NextValidStatuses(),
		}
	}

	updated, err := u.repo.UpdateStatus(ctx, id, target)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[job][usecase] status changed job_id=%s from=%s to=%s", j.ID, j.Status, target)
	return updated, nil
}

// FinalizeJob records what the move actually took and prices the final bill,
// including any box overage against the original quote.
func (u *JobUseCase) FinalizeJob(ctx context.Context, id string, in FinalizeJobInput) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if in.ActualHours <= 0 || in.ActualBoxCount < 0 || in.MaterialsCost < 0 {
		return entities.Job{}, ErrInvalidJobInput
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	now := time.Now().UTC()
	j.ActualHours = in.ActualHours
	j.BoxCountActual = in.ActualBoxCount
	if in.MaterialsCost > 0 {
		j.MaterialsCost = in.MaterialsCost
	}

	breakdown := tariff.ActualJob(tariff.ActualInput{
		CrewSize:         j.CrewSize,
		ActualHours:      j.ActualHours,
		DistanceMiles:    j.TotalDistance,
		BoxCountQuoted:   j.BoxCountQuoted,
		ActualBoxCount:   j.BoxCountActual,
		MattressBagCount: j.MattressBagCount,
		MaterialsCost:    j.MaterialsCost,
		IsOddJob:         j.IsOddJob,
		IsLaborOnly:      j.IsLaborOnly,
		JobDate:          j.PricingDate(now),
		IsWeekend:        j.IsWeekend,
		IsHoliday:        j.IsHoliday,
	})

	j.HourlyRate = breakdown.Labor.HourlyRate
	j.LaborCost = breakdown.LaborCost
	j.TravelFee = breakdown.TravelFee
	j.MileageFee = breakdown.MileageFee
	j.BoxOverageFee = breakdown.BoxOverageFee
	j.MattressBagFee = breakdown.MattressBagFee
	j.TotalActual = breakdown.Total
	if j.InvoiceNumber == "" {
		j.InvoiceNumber = entities.NewInvoiceNumber(now)
	}
	j.UpdatedAt = now

	log.Printf("[job][usecase] finalized job job_id=%s total_actual=%s box_overage=%s", j.ID, j.TotalActual, j.BoxOverageFee)
	return u.repo.Update(ctx, j)
}

// ProfitAnalysis computes the profitability of a job against the supplied
// expenses. Revenue is the finalized total when recorded, otherwise the
// estimate.
func (u *JobUseCase) ProfitAnalysis(ctx context.Context, id string, expenses tariff.Expenses) (tariff.ProfitReport, error) {
	j, err := u.GetJob(ctx, id)
	if err != nil {
		return tariff.ProfitReport{}, err
	}

	revenue := j.TotalActual
	if revenue == 0 {
		revenue = j.TotalEstimate
	}
	return tariff.Profit(revenue, expenses), nil
}

func (u *JobUseCase) DeleteJob(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJobID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrJobNotFound
	}
	return nil
}

// priceable reports whether a job carries enough data for the tariff engine.
func priceable(j entities.Job) bool {
	return j.CrewSize > 0 && j.EstimatedHours > 0
}

func applyEstimate(j *entities.Job, now time.Time) {
	breakdown := tariff.EstimateJob(tariff.EstimateInput{
		CrewSize:         j.CrewSize,
		EstimatedHours:   j.EstimatedHours,
		DistanceMiles:    j.TotalDistance,
		BoxCountQuoted:   j.BoxCountQuoted,
		MattressBagCount: j.MattressBagCount,
		MaterialsCost:    j.MaterialsCost,
		IsOddJob:         j.IsOddJob,
		IsLaborOnly:      j.IsLaborOnly,
		JobDate:          j.PricingDate(now),
		IsWeekend:        j.IsWeekend,
		IsHoliday:        j.IsHoliday,
	})

	j.HourlyRate = breakdown.Labor.HourlyRate
	j.LaborCost = breakdown.LaborCost
	j.TravelFee = breakdown.TravelFee
	j.MileageFee = breakdown.MileageFee
	j.MattressBagFee = breakdown.MattressBagFee
	j.TotalEstimate = breakdown.Total
}

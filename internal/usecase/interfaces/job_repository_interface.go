package interfaces

import (
	"context"
	"meridian_moving/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// The back office must be able to:
//   - create a job when a lead comes in (pre-priced by the tariff engine)
//   - list the pipeline as a whole, by status, or by customer
//   - replace a job's fields after repricing or finalization
//   - move a job's status after the lifecycle check passed

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	ListByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
	Delete(ctx context.Context, id string) (bool, error)
}

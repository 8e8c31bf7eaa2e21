package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidCustomerInput = errors.New("invalid customer input")
	ErrCustomerHasJobs      = errors.New("customer has existing jobs")
)

// ICustomerUseCase exposes customer book operations.

type ICustomerUseCase interface {
	CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetCustomer(ctx context.Context, id string) (entities.Customer, error)
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	UpdateCustomer(ctx context.Context, id string, c entities.Customer) (entities.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo    interfaces.ICustomerRepository
	jobRepo interfaces.IJobRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, jobRepo interfaces.IJobRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, jobRepo: jobRepo}
}

func (u *CustomerUseCase) CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.FirstName == "" || c.LastName == "" || c.Phone == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetCustomer(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, c entities.Customer) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" || strings.TrimSpace(c.Phone) == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}

	return u.repo.Update(ctx, c)
}

// DeleteCustomer refuses to remove a customer who still has jobs on file;
// the jobs must be deleted or reassigned first.
func (u *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}

	jobs, err := u.jobRepo.ListByCustomerID(ctx, id)
	if err != nil {
		return err
	}
	if len(jobs) > 0 {
		return ErrCustomerHasJobs
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCustomerNotFound
	}
	return nil
}

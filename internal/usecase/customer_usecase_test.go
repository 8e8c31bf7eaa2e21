package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"meridian_moving/internal/domain/entities"
	mock_interfaces "meridian_moving/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_CreateCustomer(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		_, err := uc.CreateCustomer(context.Background(), entities.Customer{FirstName: "Dana"})
		if !errors.Is(err, ErrInvalidCustomerInput) {
			t.Fatalf("expected ErrInvalidCustomerInput, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.FirstName != "Dana" || c.LastName != "Reyes" || c.Phone != "(609) 555-0100" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		_, err := uc.CreateCustomer(context.Background(), entities.Customer{
			FirstName: " Dana ",
			LastName:  "Reyes",
			Phone:     "(609) 555-0100",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_GetCustomer(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		_, err := uc.GetCustomer(context.Background(), "")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.GetCustomer(context.Background(), "cust-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_UpdateCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo, nil)

	created := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", CreatedAt: created}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
		func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			if c.ID != "cust-1" || !c.CreatedAt.Equal(created) {
				t.Fatalf("identity not preserved: %+v", c)
			}
			if c.City != "Princeton" {
				t.Fatalf("update not applied: %+v", c)
			}
			return c, nil
		},
	)

	_, err := uc.UpdateCustomer(context.Background(), "cust-1", entities.Customer{
		FirstName: "Dana",
		LastName:  "Reyes",
		Phone:     "(609) 555-0100",
		City:      "Princeton",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCustomerUseCase_DeleteCustomer(t *testing.T) {
	t.Run("blocked while jobs exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewCustomerUseCase(repo, jobs)

		jobs.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.Job{{ID: "job-1"}}, nil)

		if err := uc.DeleteCustomer(context.Background(), "cust-1"); !errors.Is(err, ErrCustomerHasJobs) {
			t.Fatalf("expected ErrCustomerHasJobs, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewCustomerUseCase(repo, jobs)

		jobs.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), "cust-1").Return(false, nil)

		if err := uc.DeleteCustomer(context.Background(), "cust-1"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewCustomerUseCase(repo, jobs)

		jobs.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), "cust-1").Return(true, nil)

		if err := uc.DeleteCustomer(context.Background(), "cust-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

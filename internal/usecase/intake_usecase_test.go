package usecase

import (
	"context"
	"errors"
	"testing"

	"meridian_moving/internal/domain/entities"
	mock_interfaces "meridian_moving/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestIntakeUseCase_CreateQuote(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewIntakeUseCase(nil, nil)
		_, err := uc.CreateQuote(context.Background(), entities.Quote{FirstName: "Sam"})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("success starts pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewIntakeUseCase(quotes, nil)

		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.Status != entities.QuoteStatusPending || q.CreatedAt.IsZero() {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return q, nil
			},
		)

		_, err := uc.CreateQuote(context.Background(), entities.Quote{
			FirstName:   "Sam",
			LastName:    "Okafor",
			Email:       "sam@example.com",
			Phone:       "(609) 555-0188",
			ServiceType: "residential",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestIntakeUseCase_CreateContact(t *testing.T) {
	t.Run("missing message", func(t *testing.T) {
		uc := NewIntakeUseCase(nil, nil)
		_, err := uc.CreateContact(context.Background(), entities.Contact{Name: "Sam", Email: "s@x.com", Subject: "hi"})
		if !errors.Is(err, ErrInvalidContactInput) {
			t.Fatalf("expected ErrInvalidContactInput, got %v", err)
		}
	})

	t.Run("success starts new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contacts := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewIntakeUseCase(nil, contacts)

		contacts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contact{})).DoAndReturn(
			func(_ context.Context, c entities.Contact) (entities.Contact, error) {
				if c.ID == "" || c.Status != entities.ContactStatusNew {
					t.Fatalf("unexpected contact: %+v", c)
				}
				return c, nil
			},
		)

		_, err := uc.CreateContact(context.Background(), entities.Contact{
			Name:    "Sam",
			Email:   "sam@example.com",
			Subject: "Stair question",
			Message: "Do you handle third floor walkups?",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestIntakeUseCase_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	contacts := mock_interfaces.NewMockIContactRepository(ctrl)
	uc := NewIntakeUseCase(quotes, contacts)

	quotes.EXPECT().List(gomock.Any()).Return([]entities.Quote{{ID: "q-1"}}, nil)
	contacts.EXPECT().List(gomock.Any()).Return([]entities.Contact{{ID: "c-1"}, {ID: "c-2"}}, nil)

	if got, err := uc.ListQuotes(context.Background()); err != nil || len(got) != 1 {
		t.Fatalf("unexpected quotes: %v %v", got, err)
	}
	if got, err := uc.ListContacts(context.Background()); err != nil || len(got) != 2 {
		t.Fatalf("unexpected contacts: %v %v", got, err)
	}
}

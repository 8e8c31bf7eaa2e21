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
	ErrInvalidQuoteInput   = errors.New("invalid quote request")
	ErrInvalidContactInput = errors.New("invalid contact message")
)

// IIntakeUseCase handles submissions from the public marketing site:
// quote requests and contact form messages.

type IIntakeUseCase interface {
	CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	CreateContact(ctx context.Context, c entities.Contact) (entities.Contact, error)
	ListContacts(ctx context.Context) ([]entities.Contact, error)
}

type IntakeUseCase struct {
	quoteRepo   interfaces.IQuoteRepository
	contactRepo interfaces.IContactRepository
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(quoteRepo interfaces.IQuoteRepository, contactRepo interfaces.IContactRepository) *IntakeUseCase {
	return &IntakeUseCase{quoteRepo: quoteRepo, contactRepo: contactRepo}
}

func (u *IntakeUseCase) CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.FirstName = strings.TrimSpace(q.FirstName)
	q.LastName = strings.TrimSpace(q.LastName)
	q.Email = strings.TrimSpace(q.Email)
	q.Phone = strings.TrimSpace(q.Phone)
	q.ServiceType = strings.TrimSpace(q.ServiceType)
	if q.FirstName == "" || q.LastName == "" || q.Email == "" || q.Phone == "" || q.ServiceType == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	q.ID = uuid.NewString()
	q.Status = entities.QuoteStatusPending
	q.CreatedAt = time.Now().UTC()
	return u.quoteRepo.Create(ctx, q)
}

func (u *IntakeUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return u.quoteRepo.List(ctx)
}

func (u *IntakeUseCase) CreateContact(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
	if c.Name == "" || c.Email == "" || c.Message == "" {
		return entities.Contact{}, ErrInvalidContactInput
	}

	c.ID = uuid.NewString()
	c.Status = entities.ContactStatusNew
	c.CreatedAt = time.Now().UTC()
	return u.contactRepo.Create(ctx, c)
}

func (u *IntakeUseCase) ListContacts(ctx context.Context) ([]entities.Contact, error) {
	return u.contactRepo.List(ctx)
}

package interfaces

import (
	"context"
	"meridian_moving/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for website quote requests.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
}

// IContactRepository abstracts DynamoDB persistence for contact messages.

type IContactRepository interface {
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
	List(ctx context.Context) ([]entities.Contact, error)
}

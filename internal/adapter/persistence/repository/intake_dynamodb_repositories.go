package repository

import (
	"context"

	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultQuotesTableName   = "quote_requests"
	defaultContactsTableName = "contact_messages"
)

type quoteItem struct {
	ID                 string `dynamodbav:"id"`
	FirstName          string `dynamodbav:"first_name"`
	LastName           string `dynamodbav:"last_name"`
	Email              string `dynamodbav:"email"`
	Phone              string `dynamodbav:"phone"`
	ServiceType        string `dynamodbav:"service_type"`
	OriginAddress      string `dynamodbav:"origin_address"`
	DestinationAddress string `dynamodbav:"destination_address"`
	MoveDate           string `dynamodbav:"move_date"`
	EstimatedBoxes     int    `dynamodbav:"estimated_boxes"`
	SpecialItems       string `dynamodbav:"special_items,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
	Status             string `dynamodbav:"status"`
	CreatedAt          string `dynamodbav:"created_at"`
}

type contactItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Subject   string `dynamodbav:"subject"`
	Message   string `dynamodbav:"message"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists website quote requests in DynamoDB.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(quoteItem{
		ID:                 q.ID,
		FirstName:          q.FirstName,
		LastName:           q.LastName,
		Email:              q.Email,
		Phone:              q.Phone,
		ServiceType:        q.ServiceType,
		OriginAddress:      q.OriginAddress,
		DestinationAddress: q.DestinationAddress,
		MoveDate:           q.MoveDate,
		EstimatedBoxes:     q.EstimatedBoxes,
		SpecialItems:       q.SpecialItems,
		Notes:              q.Notes,
		Status:             string(q.Status),
		CreatedAt:          formatTime(q.CreatedAt),
	})
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	var quotes []entities.Quote
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, entities.Quote{
				ID:                 it.ID,
				FirstName:          it.FirstName,
				LastName:           it.LastName,
				Email:              it.Email,
				Phone:              it.Phone,
				ServiceType:        it.ServiceType,
				OriginAddress:      it.OriginAddress,
				DestinationAddress: it.DestinationAddress,
				MoveDate:           it.MoveDate,
				EstimatedBoxes:     it.EstimatedBoxes,
				SpecialItems:       it.SpecialItems,
				Notes:              it.Notes,
				Status:             entities.QuoteStatus(it.Status),
				CreatedAt:          parseTime(it.CreatedAt),
			})
		}
	}
	return quotes, nil
}

// ContactDynamoRepository persists contact form messages in DynamoDB.

type ContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb *dynamodb.Client) *ContactDynamoRepository {
	return &ContactDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTACTS_TABLE", defaultContactsTableName),
	}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	av, err := attributevalue.MarshalMap(contactItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    c.Status,
		CreatedAt: formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.Contact{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ContactDynamoRepository) List(ctx context.Context) ([]entities.Contact, error) {
	var contacts []entities.Contact
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []contactItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			contacts = append(contacts, entities.Contact{
				ID:        it.ID,
				Name:      it.Name,
				Email:     it.Email,
				Subject:   it.Subject,
				Message:   it.Message,
				Status:    it.Status,
				CreatedAt: parseTime(it.CreatedAt),
			})
		}
	}
	return contacts, nil
}

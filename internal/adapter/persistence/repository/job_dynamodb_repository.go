package repository

import (
	"context"
	"errors"
	"time"

	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/domain/tariff"
	"meridian_moving/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	Status        string `dynamodbav:"status"`
	Title         string `dynamodbav:"title"`
	Description   string `dynamodbav:"description,omitempty"`
	JobNumber     string `dynamodbav:"job_number"`
	InvoiceNumber string `dynamodbav:"invoice_number,omitempty"`

	OriginAddress      string `dynamodbav:"origin_address"`
	DestinationAddress string `dynamodbav:"destination_address"`

	PreferredDate string `dynamodbav:"preferred_date,omitempty"`

	CrewSize         int     `dynamodbav:"crew_size"`
	EstimatedHours   float64 `dynamodbav:"estimated_hours"`
	ActualHours      float64 `dynamodbav:"actual_hours"`
	TotalDistance    float64 `dynamodbav:"total_distance"`
	BoxCountQuoted   int     `dynamodbav:"box_count_quoted"`
	BoxCountActual   int     `dynamodbav:"box_count_actual"`
	MattressBagCount int     `dynamodbav:"mattress_bag_count"`
	IsOddJob         bool    `dynamodbav:"is_odd_job"`
	IsLaborOnly      bool    `dynamodbav:"is_labor_only"`
	IsWeekend        bool    `dynamodbav:"is_weekend"`
	IsHoliday        bool    `dynamodbav:"is_holiday"`

	// Money fields stored as integer cents.
	HourlyRate     int64 `dynamodbav:"hourly_rate"`
	LaborCost      int64 `dynamodbav:"labor_cost"`
	TravelFee      int64 `dynamodbav:"travel_fee"`
	MileageFee     int64 `dynamodbav:"mileage_fee"`
	BoxOverageFee  int64 `dynamodbav:"box_overage_fee"`
	MattressBagFee int64 `dynamodbav:"mattress_bag_fee"`
	MaterialsCost  int64 `dynamodbav:"materials_cost"`
	TotalEstimate  int64 `dynamodbav:"total_estimate"`
	TotalActual    int64 `dynamodbav:"total_actual"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing by status or customer scans with a filter expression. The pipeline
// of a local moving company is small enough that a scan stays cheap; a GSI
// can be added if the table ever grows past that.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	return r.scan(ctx, nil, nil, "")
}

func (r *JobDynamoRepository) ListByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error) {
	return r.scan(ctx,
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{":status": &types.AttributeValueMemberS{Value: string(status)}},
		"#status = :status",
	)
}

func (r *JobDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	return r.scan(ctx,
		map[string]string{"#customer_id": "customer_id"},
		map[string]types.AttributeValue{":customer_id": &types.AttributeValueMemberS{Value: customerID}},
		"#customer_id = :customer_id",
	)
}

func (r *JobDynamoRepository) scan(
	ctx context.Context,
	names map[string]string,
	values map[string]types.AttributeValue,
	filter string,
) ([]entities.Job, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var jobs []entities.Job
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []jobItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			jobs = append(jobs, fromJobItem(it))
		}
	}
	return jobs, nil
}

// Update replaces the stored job wholesale; the usecase layer already merged
// the stored fields it wants to keep.
func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	now := formatTime(time.Now().UTC())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                 j.ID,
		CustomerID:         j.CustomerID,
		Status:             string(j.Status),
		Title:              j.Title,
		Description:        j.Description,
		JobNumber:          j.JobNumber,
		InvoiceNumber:      j.InvoiceNumber,
		OriginAddress:      j.OriginAddress,
		DestinationAddress: j.DestinationAddress,
		PreferredDate:      formatTime(j.PreferredDate),
		CrewSize:           j.CrewSize,
		EstimatedHours:     j.EstimatedHours,
		ActualHours:        j.ActualHours,
		TotalDistance:      j.TotalDistance,
		BoxCountQuoted:     j.BoxCountQuoted,
		BoxCountActual:     j.BoxCountActual,
		MattressBagCount:   j.MattressBagCount,
		IsOddJob:           j.IsOddJob,
		IsLaborOnly:        j.IsLaborOnly,
		IsWeekend:          j.IsWeekend,
		IsHoliday:          j.IsHoliday,
		HourlyRate:         int64(j.HourlyRate),
		LaborCost:          int64(j.LaborCost),
		TravelFee:          int64(j.TravelFee),
		MileageFee:         int64(j.MileageFee),
		BoxOverageFee:      int64(j.BoxOverageFee),
		MattressBagFee:     int64(j.MattressBagFee),
		MaterialsCost:      int64(j.MaterialsCost),
		TotalEstimate:      int64(j.TotalEstimate),
		TotalActual:        int64(j.TotalActual),
		CreatedAt:          formatTime(j.CreatedAt),
		UpdatedAt:          formatTime(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		Status:             entities.JobStatus(it.Status),
		Title:              it.Title,
		Description:        it.Description,
		JobNumber:          it.JobNumber,
		InvoiceNumber:      it.InvoiceNumber,
		OriginAddress:      it.OriginAddress,
		DestinationAddress: it.DestinationAddress,
		PreferredDate:      parseTime(it.PreferredDate),
		CrewSize:           it.CrewSize,
		EstimatedHours:     it.EstimatedHours,
		ActualHours:        it.ActualHours,
		TotalDistance:      it.TotalDistance,
		BoxCountQuoted:     it.BoxCountQuoted,
		BoxCountActual:     it.BoxCountActual,
		MattressBagCount:   it.MattressBagCount,
		IsOddJob:           it.IsOddJob,
		IsLaborOnly:        it.IsLaborOnly,
		IsWeekend:          it.IsWeekend,
		IsHoliday:          it.IsHoliday,
		HourlyRate:         tariff.Cents(it.HourlyRate),
		LaborCost:          tariff.Cents(it.LaborCost),
		TravelFee:          tariff.Cents(it.TravelFee),
		MileageFee:         tariff.Cents(it.MileageFee),
		BoxOverageFee:      tariff.Cents(it.BoxOverageFee),
		MattressBagFee:     tariff.Cents(it.MattressBagFee),
		MaterialsCost:      tariff.Cents(it.MaterialsCost),
		TotalEstimate:      tariff.Cents(it.TotalEstimate),
		TotalActual:        tariff.Cents(it.TotalActual),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

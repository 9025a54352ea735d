package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"casa_em_dia/internal/domain/entities"
	"casa_em_dia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceRecordsTableName = "service_records"

type serviceRecordItem struct {
	ID          string `dynamodbav:"id"`
	CustomerID  string `dynamodbav:"customer_id"`
	ServiceDate string `dynamodbav:"service_date"`
	ServiceType string `dynamodbav:"service_type"`
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
	Status      string `dynamodbav:"status"`
	PhotoPath   string `dynamodbav:"photo_path"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ServiceRecordDynamoRepository persists ServiceRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the full table and filters client-side: the collection is one
// office's service history, small enough that a scan per refresh stays cheap,
// and the substring/range predicates do not map onto DynamoDB filter
// expressions anyway.

type ServiceRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRecordGateway = (*ServiceRecordDynamoRepository)(nil)

func NewServiceRecordDynamoRepository(ddb *dynamodb.Client) *ServiceRecordDynamoRepository {
	return &ServiceRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_RECORDS_TABLE", defaultServiceRecordsTableName),
	}
}

func (r *ServiceRecordDynamoRepository) List(ctx context.Context, filter entities.RecordFilter) ([]entities.ServiceRecord, error) {
	records := make([]entities.ServiceRecord, 0)

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []serviceRecordItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			rec := fromServiceRecordItem(it)
			if filter.Matches(rec) {
				records = append(records, rec)
			}
		}
	}
	return records, nil
}

func (r *ServiceRecordDynamoRepository) Create(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	av, err := attributevalue.MarshalMap(toServiceRecordItem(rec))
	if err != nil {
		return entities.ServiceRecord{}, err
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
		return entities.ServiceRecord{}, err
	}
	return rec, nil
}

func (r *ServiceRecordDynamoRepository) Update(ctx context.Context, id string, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	existing, err := r.getByID(ctx, id)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if existing.ID == "" {
		// Zero ID signals "not found" to the caller.
		return entities.ServiceRecord{}, nil
	}

	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toServiceRecordItem(rec))
	if err != nil {
		return entities.ServiceRecord{}, err
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
			return entities.ServiceRecord{}, nil
		}
		return entities.ServiceRecord{}, err
	}
	return rec, nil
}

func (r *ServiceRecordDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ServiceRecordDynamoRepository) getByID(ctx context.Context, id string) (entities.ServiceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRecord{}, nil
	}

	var it serviceRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRecord{}, err
	}
	return fromServiceRecordItem(it), nil
}

func toServiceRecordItem(rec entities.ServiceRecord) serviceRecordItem {
	return serviceRecordItem{
		ID:          rec.ID,
		CustomerID:  rec.CustomerID,
		ServiceDate: formatDate(rec.ServiceDate),
		ServiceType: rec.ServiceType,
		Description: rec.Description,
		Amount:      floatToString(rec.Amount),
		Status:      string(rec.Status),
		PhotoPath:   rec.PhotoPath,
		CreatedAt:   formatTimestamp(rec.CreatedAt),
		UpdatedAt:   formatTimestamp(rec.UpdatedAt),
	}
}

// fromServiceRecordItem tolerates malformed stored values: an unparseable
// service date becomes the zero time, which downstream derivations skip.
func fromServiceRecordItem(it serviceRecordItem) entities.ServiceRecord {
	serviceDate, _ := time.Parse(dateLayout, it.ServiceDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.ServiceRecord{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		ServiceDate: serviceDate,
		ServiceType: it.ServiceType,
		Description: it.Description,
		Amount:      amount,
		Status:      entities.RecordStatus(it.Status),
		PhotoPath:   it.PhotoPath,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

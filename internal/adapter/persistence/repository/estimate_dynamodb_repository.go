package repository

import (
	"context"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesOwnerIndex       = "owner_contact-index"
	estimatesJobIDIndex       = "job_id-index"
)

type materialItem struct {
	Name     string  `dynamodbav:"name"`
	Quantity float64 `dynamodbav:"quantity"`
	UnitCost float64 `dynamodbav:"unit_cost"`
}

type estimateItem struct {
	ID                  string         `dynamodbav:"id"`
	OwnerContact        string         `dynamodbav:"owner_contact"`
	JobID               string         `dynamodbav:"job_id,omitempty"`
	Name                string         `dynamodbav:"name"`
	Client              string         `dynamodbav:"client,omitempty"`
	Location            string         `dynamodbav:"location,omitempty"`
	LaborHours          float64        `dynamodbav:"labor_hours"`
	LaborRate           float64        `dynamodbav:"labor_rate"`
	Materials           []materialItem `dynamodbav:"materials,omitempty"`
	Total               string         `dynamodbav:"total"`
	LegacyEstimatedCost string         `dynamodbav:"estimated_cost,omitempty"`
	Status              string         `dynamodbav:"status"`
	CreatedAt           string         `dynamodbav:"created_at"`
	UpdatedAt           string         `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_contact-index (PK: owner_contact)
//   - GSI: job_id-index (PK: job_id)
//
// job_id-index serves the aggregator: recompute queries the estimates
// currently bearing a job backreference instead of trusting cached state.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *EstimateDynamoRepository) ListByOwner(ctx context.Context, ownerContact string) ([]entities.Estimate, error) {
	return r.queryIndex(ctx, estimatesOwnerIndex, "owner_contact = :v", ownerContact)
}

func (r *EstimateDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Estimate, error) {
	return r.queryIndex(ctx, estimatesJobIDIndex, "job_id = :v", jobID)
}

func (r *EstimateDynamoRepository) queryIndex(ctx context.Context, index, keyCondition, value string) ([]entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	estimates := make([]entities.Estimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		estimates = append(estimates, fromEstimateItem(it))
	}
	return estimates, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	materials := make([]materialItem, 0, len(e.Materials))
	for _, m := range e.Materials {
		materials = append(materials, materialItem{Name: m.Name, Quantity: m.Quantity, UnitCost: m.UnitCost})
	}
	it := estimateItem{
		ID:           e.ID,
		OwnerContact: e.OwnerContact,
		JobID:        e.JobID,
		Name:         e.Name,
		Client:       e.Client,
		Location:     e.Location,
		LaborHours:   e.LaborHours,
		LaborRate:    e.LaborRate,
		Materials:    materials,
		Total:        floatToString(e.Total),
		Status:       string(e.Status),
		CreatedAt:    timeToString(e.CreatedAt),
		UpdatedAt:    timeToString(e.UpdatedAt),
	}
	if e.LegacyEstimatedCost != 0 {
		it.LegacyEstimatedCost = floatToString(e.LegacyEstimatedCost)
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	materials := make([]entities.Material, 0, len(it.Materials))
	for _, m := range it.Materials {
		materials = append(materials, entities.Material{Name: m.Name, Quantity: m.Quantity, UnitCost: m.UnitCost})
	}
	e := entities.Estimate{
		ID:           it.ID,
		OwnerContact: it.OwnerContact,
		JobID:        it.JobID,
		Name:         it.Name,
		Client:       it.Client,
		Location:     it.Location,
		LaborHours:   it.LaborHours,
		LaborRate:    it.LaborRate,
		Materials:    materials,
		Total:        stringToFloat(it.Total),
		Status:       entities.EstimateStatus(it.Status),
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
	if it.LegacyEstimatedCost != "" {
		e.LegacyEstimatedCost = stringToFloat(it.LegacyEstimatedCost)
	}
	return e
}

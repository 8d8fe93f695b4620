package repository

import (
	"context"
	"errors"
	"strconv"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName        = "invoices"
	defaultInvoiceCountersTableName = "invoice_counters"
	invoicesOwnerIndex              = "owner_contact-index"
)

type lineItemItem struct {
	Description string  `dynamodbav:"description"`
	Quantity    float64 `dynamodbav:"quantity"`
	Rate        float64 `dynamodbav:"rate"`
}

type invoiceItem struct {
	ID            string         `dynamodbav:"id"`
	OwnerContact  string         `dynamodbav:"owner_contact"`
	JobID         string         `dynamodbav:"job_id,omitempty"`
	InvoiceNumber int64          `dynamodbav:"invoice_number"`
	Client        string         `dynamodbav:"client,omitempty"`
	Date          string         `dynamodbav:"date"`
	LineItems     []lineItemItem `dynamodbav:"line_items,omitempty"`
	Status        string         `dynamodbav:"status"`
	CreatedAt     string         `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - invoices: PK id (string), GSI owner_contact-index (PK: owner_contact)
//   - invoice_counters: PK owner_contact (string), numeric sequence_value
//
// NextInvoiceNumber relies on DynamoDB's atomic ADD: concurrent callers for
// the same owner each receive a distinct, strictly increasing value.

type InvoiceDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		countersTable: getenvDefault("INVOICE_COUNTERS_TABLE", defaultInvoiceCountersTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, i entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(i))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return i, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Save(ctx context.Context, i entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(i))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return i, nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *InvoiceDynamoRepository) ListByOwner(ctx context.Context, ownerContact string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesOwnerIndex),
		KeyConditionExpression: aws.String("owner_contact = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerContact},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) NextInvoiceNumber(ctx context.Context, ownerContact string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"owner_contact": &types.AttributeValueMemberS{Value: ownerContact},
		},
		UpdateExpression: aws.String("ADD sequence_value :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["sequence_value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("invoice counter returned no sequence value")
	}
	return strconv.ParseInt(raw.Value, 10, 64)
}

func toInvoiceItem(i entities.Invoice) invoiceItem {
	lines := make([]lineItemItem, 0, len(i.LineItems))
	for _, li := range i.LineItems {
		lines = append(lines, lineItemItem{Description: li.Description, Quantity: li.Quantity, Rate: li.Rate})
	}
	return invoiceItem{
		ID:            i.ID,
		OwnerContact:  i.OwnerContact,
		JobID:         i.JobID,
		InvoiceNumber: i.InvoiceNumber,
		Client:        i.Client,
		Date:          timeToString(i.Date),
		LineItems:     lines,
		Status:        string(i.Status),
		CreatedAt:     timeToString(i.CreatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	lines := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lines = append(lines, entities.LineItem{Description: li.Description, Quantity: li.Quantity, Rate: li.Rate})
	}
	return entities.Invoice{
		ID:            it.ID,
		OwnerContact:  it.OwnerContact,
		JobID:         it.JobID,
		InvoiceNumber: it.InvoiceNumber,
		Client:        it.Client,
		Date:          stringToTime(it.Date),
		LineItems:     lines,
		Status:        entities.InvoiceStatus(it.Status),
		CreatedAt:     stringToTime(it.CreatedAt),
	}
}

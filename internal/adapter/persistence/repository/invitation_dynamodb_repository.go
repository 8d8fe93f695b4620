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
	defaultInvitationsTableName  = "invitations"
	invitationsJobIDIndex        = "job_id-index"
	invitationsCollaboratorIndex = "collaborator_contact-index"
)

type invitationItem struct {
	ID                     string `dynamodbav:"id"`
	JobID                  string `dynamodbav:"job_id"`
	OwnerContact           string `dynamodbav:"owner_contact"`
	CollaboratorContact    string `dynamodbav:"collaborator_contact"`
	Status                 string `dynamodbav:"status"`
	AcceptedCollaboratorID string `dynamodbav:"accepted_collaborator_id,omitempty"`
	SharedJobID            string `dynamodbav:"shared_job_id,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// InvitationDynamoRepository persists Invitation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//   - GSI: collaborator_contact-index (PK: collaborator_contact)
//
// Unlike the per-owner collections, invitations are queried across owners:
// the collaborator index serves lookups by the invitee before they own any
// record.

type InvitationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvitationRepository = (*InvitationDynamoRepository)(nil)

func NewInvitationDynamoRepository(ddb *dynamodb.Client) *InvitationDynamoRepository {
	return &InvitationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVITATIONS_TABLE", defaultInvitationsTableName),
	}
}

func (r *InvitationDynamoRepository) Create(ctx context.Context, i entities.Invitation) (entities.Invitation, error) {
	av, err := attributevalue.MarshalMap(toInvitationItem(i))
	if err != nil {
		return entities.Invitation{}, err
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
		return entities.Invitation{}, err
	}
	return i, nil
}

func (r *InvitationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invitation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invitation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invitation{}, nil
	}

	var it invitationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invitation{}, err
	}
	return fromInvitationItem(it), nil
}

func (r *InvitationDynamoRepository) Save(ctx context.Context, i entities.Invitation) (entities.Invitation, error) {
	av, err := attributevalue.MarshalMap(toInvitationItem(i))
	if err != nil {
		return entities.Invitation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Invitation{}, err
	}
	return i, nil
}

func (r *InvitationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *InvitationDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Invitation, error) {
	return r.queryIndex(ctx, invitationsJobIDIndex, "job_id = :v", jobID)
}

func (r *InvitationDynamoRepository) ListByCollaborator(ctx context.Context, collaboratorContact string) ([]entities.Invitation, error) {
	return r.queryIndex(ctx, invitationsCollaboratorIndex, "collaborator_contact = :v", collaboratorContact)
}

func (r *InvitationDynamoRepository) queryIndex(ctx context.Context, index, keyCondition, value string) ([]entities.Invitation, error) {
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

	invitations := make([]entities.Invitation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invitationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invitations = append(invitations, fromInvitationItem(it))
	}
	return invitations, nil
}

func toInvitationItem(i entities.Invitation) invitationItem {
	return invitationItem{
		ID:                     i.ID,
		JobID:                  i.JobID,
		OwnerContact:           i.OwnerContact,
		CollaboratorContact:    i.CollaboratorContact,
		Status:                 string(i.Status),
		AcceptedCollaboratorID: i.AcceptedCollaboratorID,
		SharedJobID:            i.SharedJobID,
		CreatedAt:              timeToString(i.CreatedAt),
		UpdatedAt:              timeToString(i.UpdatedAt),
	}
}

func fromInvitationItem(it invitationItem) entities.Invitation {
	return entities.Invitation{
		ID:                     it.ID,
		JobID:                  it.JobID,
		OwnerContact:           it.OwnerContact,
		CollaboratorContact:    it.CollaboratorContact,
		Status:                 entities.InvitationStatus(it.Status),
		AcceptedCollaboratorID: it.AcceptedCollaboratorID,
		SharedJobID:            it.SharedJobID,
		CreatedAt:              stringToTime(it.CreatedAt),
		UpdatedAt:              stringToTime(it.UpdatedAt),
	}
}

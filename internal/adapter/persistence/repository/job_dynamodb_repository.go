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
	defaultJobsTableName = "jobs"
	jobsOwnerIndex       = "owner_contact-index"
)

type workSessionItem struct {
	Start string `dynamodbav:"start"`
	End   string `dynamodbav:"end"`
}

type collaboratorLinkItem struct {
	CollaboratorContact string `dynamodbav:"collaborator_contact"`
	Status              string `dynamodbav:"status"`
	SharedJobID         string `dynamodbav:"shared_job_id,omitempty"`
	InvitationID        string `dynamodbav:"invitation_id"`
}

type jobItem struct {
	ID                   string                 `dynamodbav:"id"`
	OwnerContact         string                 `dynamodbav:"owner_contact"`
	Title                string                 `dynamodbav:"title"`
	Client               string                 `dynamodbav:"client,omitempty"`
	Location             string                 `dynamodbav:"location,omitempty"`
	Status               string                 `dynamodbav:"status"`
	ScheduledAt          string                 `dynamodbav:"scheduled_at,omitempty"`
	Notes                string                 `dynamodbav:"notes,omitempty"`
	EstimateIDs          []string               `dynamodbav:"estimate_ids,omitempty"`
	EstimatedCost        string                 `dynamodbav:"estimated_cost,omitempty"`
	InvoiceID            string                 `dynamodbav:"invoice_id,omitempty"`
	WorkSessions         []workSessionItem      `dynamodbav:"work_sessions,omitempty"`
	ClockedIn            bool                   `dynamodbav:"clocked_in"`
	CurrentSessionStart  string                 `dynamodbav:"current_session_start,omitempty"`
	InvitedCollaborators []collaboratorLinkItem `dynamodbav:"invited_collaborators,omitempty"`
	IsSharedCopy         bool                   `dynamodbav:"is_shared_copy"`
	SourceJobID          string                 `dynamodbav:"source_job_id,omitempty"`
	SourceInvitationID   string                 `dynamodbav:"source_invitation_id,omitempty"`
	CreatedAt            string                 `dynamodbav:"created_at"`
	UpdatedAt            string                 `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_contact-index (PK: owner_contact)
//
// Save is an unconditional whole-item PutItem: conflict resolution is
// last-write-wins at document granularity.

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

func (r *JobDynamoRepository) Save(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *JobDynamoRepository) ListByOwner(ctx context.Context, ownerContact string) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsOwnerIndex),
		KeyConditionExpression: aws.String("owner_contact = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerContact},
		},
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func toJobItem(j entities.Job) jobItem {
	sessions := make([]workSessionItem, 0, len(j.WorkSessions))
	for _, s := range j.WorkSessions {
		sessions = append(sessions, workSessionItem{Start: timeToString(s.Start), End: timeToString(s.End)})
	}
	links := make([]collaboratorLinkItem, 0, len(j.InvitedCollaborators))
	for _, c := range j.InvitedCollaborators {
		links = append(links, collaboratorLinkItem{
			CollaboratorContact: c.CollaboratorContact,
			Status:              string(c.Status),
			SharedJobID:         c.SharedJobID,
			InvitationID:        c.InvitationID,
		})
	}
	return jobItem{
		ID:                   j.ID,
		OwnerContact:         j.OwnerContact,
		Title:                j.Title,
		Client:               j.Client,
		Location:             j.Location,
		Status:               string(j.Status),
		ScheduledAt:          timeToString(j.ScheduledAt),
		Notes:                j.Notes,
		EstimateIDs:          j.EstimateIDs,
		EstimatedCost:        j.EstimatedCost,
		InvoiceID:            j.InvoiceID,
		WorkSessions:         sessions,
		ClockedIn:            j.ClockedIn,
		CurrentSessionStart:  timeToString(j.CurrentSessionStart),
		InvitedCollaborators: links,
		IsSharedCopy:         j.IsSharedCopy,
		SourceJobID:          j.SourceJobID,
		SourceInvitationID:   j.SourceInvitationID,
		CreatedAt:            timeToString(j.CreatedAt),
		UpdatedAt:            timeToString(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	sessions := make([]entities.WorkSession, 0, len(it.WorkSessions))
	for _, s := range it.WorkSessions {
		sessions = append(sessions, entities.WorkSession{Start: stringToTime(s.Start), End: stringToTime(s.End)})
	}
	links := make([]entities.CollaboratorLink, 0, len(it.InvitedCollaborators))
	for _, c := range it.InvitedCollaborators {
		links = append(links, entities.CollaboratorLink{
			CollaboratorContact: c.CollaboratorContact,
			Status:              entities.CollaboratorStatus(c.Status),
			SharedJobID:         c.SharedJobID,
			InvitationID:        c.InvitationID,
		})
	}
	return entities.Job{
		ID:                   it.ID,
		OwnerContact:         it.OwnerContact,
		Title:                it.Title,
		Client:               it.Client,
		Location:             it.Location,
		Status:               entities.JobStatus(it.Status),
		ScheduledAt:          stringToTime(it.ScheduledAt),
		Notes:                it.Notes,
		EstimateIDs:          it.EstimateIDs,
		EstimatedCost:        it.EstimatedCost,
		InvoiceID:            it.InvoiceID,
		WorkSessions:         sessions,
		ClockedIn:            it.ClockedIn,
		CurrentSessionStart:  stringToTime(it.CurrentSessionStart),
		InvitedCollaborators: links,
		IsSharedCopy:         it.IsSharedCopy,
		SourceJobID:          it.SourceJobID,
		SourceInvitationID:   it.SourceInvitationID,
		CreatedAt:            stringToTime(it.CreatedAt),
		UpdatedAt:            stringToTime(it.UpdatedAt),
	}
}

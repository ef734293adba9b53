package repository

import (
	"context"
	"sort"
	"time"

	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	WhatsApp     string `dynamodbav:"whatsapp"`
	Neighborhood string `dynamodbav:"neighborhood"`
	City         string `dynamodbav:"city"`
	Source       string `dynamodbav:"source,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// LeadDynamoRepository persists captured leads in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Lead, 0, len(out.Items))
	for _, raw := range out.Items {
		var it leadItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLeadItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:           l.ID,
		Name:         l.Name,
		WhatsApp:     l.WhatsApp,
		Neighborhood: l.Neighborhood,
		City:         l.City,
		Source:       l.Source,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Lead{
		ID:           it.ID,
		Name:         it.Name,
		WhatsApp:     it.WhatsApp,
		Neighborhood: it.Neighborhood,
		City:         it.City,
		Source:       it.Source,
		CreatedAt:    createdAt,
	}
}

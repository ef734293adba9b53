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
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBusinessPlansTableName = "business_plans"

type businessPlanItem struct {
	ID        string   `dynamodbav:"id"`
	Name      string   `dynamodbav:"name"`
	Speed     int      `dynamodbav:"speed"`
	Price     string   `dynamodbav:"price"`
	Features  []string `dynamodbav:"features"`
	Badge     string   `dynamodbav:"badge,omitempty"`
	CreatedAt string   `dynamodbav:"created_at"`
	UpdatedAt string   `dynamodbav:"updated_at"`
}

// BusinessPlanDynamoRepository persists business plans in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type BusinessPlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBusinessPlanRepository = (*BusinessPlanDynamoRepository)(nil)

func NewBusinessPlanDynamoRepository(ddb *dynamodb.Client) *BusinessPlanDynamoRepository {
	return &BusinessPlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUSINESS_PLANS_TABLE", defaultBusinessPlansTableName),
	}
}

func (r *BusinessPlanDynamoRepository) List(ctx context.Context) ([]entities.BusinessPlan, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BusinessPlan, 0, len(out.Items))
	for _, raw := range out.Items {
		var it businessPlanItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBusinessPlanItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Speed < items[j].Speed })
	return items, nil
}

func (r *BusinessPlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.BusinessPlan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BusinessPlan{}, err
	}
	if len(out.Item) == 0 {
		return entities.BusinessPlan{}, nil
	}

	var it businessPlanItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BusinessPlan{}, err
	}
	return fromBusinessPlanItem(it), nil
}

func (r *BusinessPlanDynamoRepository) Create(ctx context.Context, p entities.BusinessPlan) (entities.BusinessPlan, error) {
	av, err := attributevalue.MarshalMap(toBusinessPlanItem(p))
	if err != nil {
		return entities.BusinessPlan{}, err
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
		return entities.BusinessPlan{}, err
	}
	return p, nil
}

func (r *BusinessPlanDynamoRepository) Update(ctx context.Context, p entities.BusinessPlan) (entities.BusinessPlan, error) {
	av, err := attributevalue.MarshalMap(toBusinessPlanItem(p))
	if err != nil {
		return entities.BusinessPlan{}, err
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
		return entities.BusinessPlan{}, err
	}
	return p, nil
}

func (r *BusinessPlanDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toBusinessPlanItem(p entities.BusinessPlan) businessPlanItem {
	return businessPlanItem{
		ID:        p.ID,
		Name:      p.Name,
		Speed:     p.Speed,
		Price:     floatToString(p.Price),
		Features:  p.Features,
		Badge:     p.Badge,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBusinessPlanItem(it businessPlanItem) entities.BusinessPlan {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.BusinessPlan{
		ID:        it.ID,
		Name:      it.Name,
		Speed:     it.Speed,
		Price:     stringToFloat(it.Price),
		Features:  it.Features,
		Badge:     it.Badge,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

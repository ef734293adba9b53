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

const defaultPlansTableName = "plans"

type planItem struct {
	ID            string   `dynamodbav:"id"`
	Name          string   `dynamodbav:"name"`
	Speed         int      `dynamodbav:"speed"`
	Price         string   `dynamodbav:"price"`
	OriginalPrice string   `dynamodbav:"original_price"`
	Features      []string `dynamodbav:"features"`
	Recommended   bool     `dynamodbav:"recommended"`
	Tag           string   `dynamodbav:"tag,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// PlanDynamoRepository persists residential plans in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small (single digits), so List scans the table and sorts by
// speed in memory rather than maintaining an index.
type PlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanRepository = (*PlanDynamoRepository)(nil)

func NewPlanDynamoRepository(ddb *dynamodb.Client) *PlanDynamoRepository {
	return &PlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *PlanDynamoRepository) List(ctx context.Context) ([]entities.Plan, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Plan, 0, len(out.Items))
	for _, raw := range out.Items {
		var it planItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPlanItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Speed < items[j].Speed })
	return items, nil
}

func (r *PlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plan{}, nil
	}

	var it planItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

func (r *PlanDynamoRepository) Create(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	av, err := attributevalue.MarshalMap(toPlanItem(p))
	if err != nil {
		return entities.Plan{}, err
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
		return entities.Plan{}, err
	}
	return p, nil
}

func (r *PlanDynamoRepository) Update(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	av, err := attributevalue.MarshalMap(toPlanItem(p))
	if err != nil {
		return entities.Plan{}, err
	}

	// Full replace; the use case already loaded the row and preserved
	// created_at. Concurrent admin edits are last-write-wins.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Plan{}, err
	}
	return p, nil
}

func (r *PlanDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPlanItem(p entities.Plan) planItem {
	return planItem{
		ID:            p.ID,
		Name:          p.Name,
		Speed:         p.Speed,
		Price:         floatToString(p.Price),
		OriginalPrice: floatToString(p.OriginalPrice),
		Features:      p.Features,
		Recommended:   p.Recommended,
		Tag:           p.Tag,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPlanItem(it planItem) entities.Plan {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Plan{
		ID:            it.ID,
		Name:          it.Name,
		Speed:         it.Speed,
		Price:         stringToFloat(it.Price),
		OriginalPrice: stringToFloat(it.OriginalPrice),
		Features:      it.Features,
		Recommended:   it.Recommended,
		Tag:           it.Tag,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

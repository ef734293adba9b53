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

const defaultTestimonialsTableName = "testimonials"

type testimonialItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Location  string `dynamodbav:"location"`
	Text      string `dynamodbav:"text"`
	Rating    int    `dynamodbav:"rating"`
	AvatarURL string `dynamodbav:"avatar_url,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// TestimonialDynamoRepository persists testimonials in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type TestimonialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITestimonialRepository = (*TestimonialDynamoRepository)(nil)

func NewTestimonialDynamoRepository(ddb *dynamodb.Client) *TestimonialDynamoRepository {
	return &TestimonialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TESTIMONIALS_TABLE", defaultTestimonialsTableName),
	}
}

func (r *TestimonialDynamoRepository) List(ctx context.Context) ([]entities.Testimonial, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Testimonial, 0, len(out.Items))
	for _, raw := range out.Items {
		var it testimonialItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTestimonialItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *TestimonialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Testimonial, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Testimonial{}, err
	}
	if len(out.Item) == 0 {
		return entities.Testimonial{}, nil
	}

	var it testimonialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Testimonial{}, err
	}
	return fromTestimonialItem(it), nil
}

func (r *TestimonialDynamoRepository) Create(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error) {
	av, err := attributevalue.MarshalMap(toTestimonialItem(t))
	if err != nil {
		return entities.Testimonial{}, err
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
		return entities.Testimonial{}, err
	}
	return t, nil
}

func (r *TestimonialDynamoRepository) Update(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error) {
	av, err := attributevalue.MarshalMap(toTestimonialItem(t))
	if err != nil {
		return entities.Testimonial{}, err
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
		return entities.Testimonial{}, err
	}
	return t, nil
}

func (r *TestimonialDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toTestimonialItem(t entities.Testimonial) testimonialItem {
	return testimonialItem{
		ID:        t.ID,
		Name:      t.Name,
		Location:  t.Location,
		Text:      t.Text,
		Rating:    t.Rating,
		AvatarURL: t.AvatarURL,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTestimonialItem(it testimonialItem) entities.Testimonial {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Testimonial{
		ID:        it.ID,
		Name:      it.Name,
		Location:  it.Location,
		Text:      it.Text,
		Rating:    it.Rating,
		AvatarURL: it.AvatarURL,
		CreatedAt: createdAt,
	}
}

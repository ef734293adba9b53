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

const defaultTrustedCompaniesTableName = "trusted_companies"

type trustedCompanyItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	LogoURL   string `dynamodbav:"logo_url"`
	LogoPath  string `dynamodbav:"logo_path"`
	CreatedAt string `dynamodbav:"created_at"`
}

// TrustedCompanyDynamoRepository persists partner-logo rows in DynamoDB.
// The logo bytes live in S3; rows only reference them.
//
// Table requirements:
//   - PK: id (string)
type TrustedCompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITrustedCompanyRepository = (*TrustedCompanyDynamoRepository)(nil)

func NewTrustedCompanyDynamoRepository(ddb *dynamodb.Client) *TrustedCompanyDynamoRepository {
	return &TrustedCompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRUSTED_COMPANIES_TABLE", defaultTrustedCompaniesTableName),
	}
}

func (r *TrustedCompanyDynamoRepository) List(ctx context.Context) ([]entities.TrustedCompany, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.TrustedCompany, 0, len(out.Items))
	for _, raw := range out.Items {
		var it trustedCompanyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTrustedCompanyItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *TrustedCompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.TrustedCompany, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TrustedCompany{}, err
	}
	if len(out.Item) == 0 {
		return entities.TrustedCompany{}, nil
	}

	var it trustedCompanyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TrustedCompany{}, err
	}
	return fromTrustedCompanyItem(it), nil
}

func (r *TrustedCompanyDynamoRepository) Create(ctx context.Context, c entities.TrustedCompany) (entities.TrustedCompany, error) {
	av, err := attributevalue.MarshalMap(toTrustedCompanyItem(c))
	if err != nil {
		return entities.TrustedCompany{}, err
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
		return entities.TrustedCompany{}, err
	}
	return c, nil
}

func (r *TrustedCompanyDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toTrustedCompanyItem(c entities.TrustedCompany) trustedCompanyItem {
	return trustedCompanyItem{
		ID:        c.ID,
		Name:      c.Name,
		LogoURL:   c.LogoURL,
		LogoPath:  c.LogoPath,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTrustedCompanyItem(it trustedCompanyItem) entities.TrustedCompany {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.TrustedCompany{
		ID:        it.ID,
		Name:      it.Name,
		LogoURL:   it.LogoURL,
		LogoPath:  it.LogoPath,
		CreatedAt: createdAt,
	}
}

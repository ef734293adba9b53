package repository

import (
	"context"
	"time"

	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUserRolesTableName = "user_roles"

type userRoleItem struct {
	UserID    string `dynamodbav:"user_id"`
	Role      string `dynamodbav:"role"`
	CreatedAt string `dynamodbav:"created_at"`
}

// UserRoleDynamoRepository persists role grants in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//   - SK: role (string)
//
// HasRole is a point read on the composite key, which is exactly the
// "(user_id, role) exact match" the admin check requires.
type UserRoleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRoleRepository = (*UserRoleDynamoRepository)(nil)

func NewUserRoleDynamoRepository(ddb *dynamodb.Client) *UserRoleDynamoRepository {
	return &UserRoleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USER_ROLES_TABLE", defaultUserRolesTableName),
	}
}

func (r *UserRoleDynamoRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
			"role":    &types.AttributeValueMemberS{Value: role},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *UserRoleDynamoRepository) Grant(ctx context.Context, g entities.UserRole) error {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(userRoleItem{
		UserID:    g.UserID,
		Role:      g.Role,
		CreatedAt: g.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

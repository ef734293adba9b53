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

const defaultContractsTableName = "contracts"

type contractItem struct {
	Protocol string `dynamodbav:"protocol"`

	PlanID    string `dynamodbav:"plan_id"`
	PlanName  string `dynamodbav:"plan_name"`
	PlanSpeed int    `dynamodbav:"plan_speed"`
	PlanPrice string `dynamodbav:"plan_price"`

	FullName string `dynamodbav:"full_name"`
	CpfCnpj  string `dynamodbav:"cpf_cnpj"`
	Email    string `dynamodbav:"email"`
	Phone    string `dynamodbav:"phone"`
	WhatsApp string `dynamodbav:"whatsapp"`

	Cep          string `dynamodbav:"cep"`
	City         string `dynamodbav:"city"`
	Street       string `dynamodbav:"street"`
	Number       string `dynamodbav:"number"`
	Complement   string `dynamodbav:"complement,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood"`

	InstallationPeriod string `dynamodbav:"installation_period"`
	Observations       string `dynamodbav:"observations,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ContractDynamoRepository persists contract requests in DynamoDB.
//
// Table requirements:
//   - PK: protocol (string)
//
// The conditional put on protocol is the final guard against a protocol
// collision: the generator is probabilistic, the table is not.
type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#protocol)"),
		ExpressionAttributeNames: map[string]string{
			"#protocol": "protocol",
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByProtocol(ctx context.Context, protocol string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"protocol": &types.AttributeValueMemberS{Value: protocol},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) List(ctx context.Context) ([]entities.Contract, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Contract, 0, len(out.Items))
	for _, raw := range out.Items {
		var it contractItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromContractItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		Protocol:           c.Protocol,
		PlanID:             c.PlanID,
		PlanName:           c.PlanName,
		PlanSpeed:          c.PlanSpeed,
		PlanPrice:          floatToString(c.PlanPrice),
		FullName:           c.FullName,
		CpfCnpj:            c.CpfCnpj,
		Email:              c.Email,
		Phone:              c.Phone,
		WhatsApp:           c.WhatsApp,
		Cep:                c.Cep,
		City:               c.City,
		Street:             c.Street,
		Number:             c.Number,
		Complement:         c.Complement,
		Neighborhood:       c.Neighborhood,
		InstallationPeriod: string(c.InstallationPeriod),
		Observations:       c.Observations,
		Status:             string(c.Status),
		CreatedAt:          c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Contract{
		Protocol:           it.Protocol,
		PlanID:             it.PlanID,
		PlanName:           it.PlanName,
		PlanSpeed:          it.PlanSpeed,
		PlanPrice:          stringToFloat(it.PlanPrice),
		FullName:           it.FullName,
		CpfCnpj:            it.CpfCnpj,
		Email:              it.Email,
		Phone:              it.Phone,
		WhatsApp:           it.WhatsApp,
		Cep:                it.Cep,
		City:               it.City,
		Street:             it.Street,
		Number:             it.Number,
		Complement:         it.Complement,
		Neighborhood:       it.Neighborhood,
		InstallationPeriod: entities.InstallationPeriod(it.InstallationPeriod),
		Observations:       it.Observations,
		Status:             entities.ContractStatus(it.Status),
		CreatedAt:          createdAt,
	}
}

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

const defaultSiteSettingsTableName = "site_settings"

type siteSettingItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SiteSettingDynamoRepository persists key/value site settings in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// Upsert is a plain PutItem: insert-or-replace by key, no condition.
type SiteSettingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISiteSettingRepository = (*SiteSettingDynamoRepository)(nil)

func NewSiteSettingDynamoRepository(ddb *dynamodb.Client) *SiteSettingDynamoRepository {
	return &SiteSettingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SITE_SETTINGS_TABLE", defaultSiteSettingsTableName),
	}
}

func (r *SiteSettingDynamoRepository) List(ctx context.Context) ([]entities.SiteSetting, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SiteSetting, 0, len(out.Items))
	for _, raw := range out.Items {
		var it siteSettingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSiteSettingItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items, nil
}

func (r *SiteSettingDynamoRepository) Upsert(ctx context.Context, s entities.SiteSetting) (entities.SiteSetting, error) {
	av, err := attributevalue.MarshalMap(siteSettingItem{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.SiteSetting{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.SiteSetting{}, err
	}
	return s, nil
}

func fromSiteSettingItem(it siteSettingItem) entities.SiteSetting {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.SiteSetting{
		Key:       it.Key,
		Value:     it.Value,
		UpdatedAt: updatedAt,
	}
}

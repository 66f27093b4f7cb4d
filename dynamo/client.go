// Package dynamo reads and updates global secondary index capacity through the
// DynamoDB control plane.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gsiscaler/autoscaler/models"
	"github.com/gsiscaler/autoscaler/ratelimiter"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	opDescribeTable = "DescribeTable"
	opUpdateTable   = "UpdateTable"
	opListTables    = "ListTables"
)

type DynamoDBAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	UpdateTable(ctx context.Context, params *dynamodb.UpdateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTableOutput, error)
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
}

type Client interface {
	ListTables(ctx context.Context) ([]string, error)
	ListIndexes(ctx context.Context, tableName string) ([]models.Index, error)
	GetProvisionedCapacity(ctx context.Context, index models.Index) (models.ProvisionedCapacity, error)
	GetIndexStatus(ctx context.Context, index models.Index) (string, error)
	ApplyCapacity(ctx context.Context, index models.Index, capacity models.ProvisionedCapacity) error
}

type client struct {
	logger         lager.Logger
	api            DynamoDBAPI
	limiter        ratelimiter.Limiter
	requestTimeout time.Duration
}

func NewClient(logger lager.Logger, api DynamoDBAPI, limiter ratelimiter.Limiter, requestTimeout time.Duration) Client {
	return &client{
		logger:         logger.Session("dynamo"),
		api:            api,
		limiter:        limiter,
		requestTimeout: requestTimeout,
	}
}

// NewDynamoDBAPI builds an SDK client, pointed at endpoint when it is set.
func NewDynamoDBAPI(cfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func (c *client) ListTables(ctx context.Context) ([]string, error) {
	var tableNames []string
	paginator := dynamodb.NewListTablesPaginator(c.api, &dynamodb.ListTablesInput{Limit: aws.Int32(100)})
	for paginator.HasMorePages() {
		if err := c.limiter.Wait(ctx, opListTables); err != nil {
			return nil, err
		}
		page, err := callWithTimeout(ctx, c.requestTimeout, func(ctx context.Context) (*dynamodb.ListTablesOutput, error) {
			return paginator.NextPage(ctx)
		})
		if err != nil {
			c.logger.Error("failed-to-list-tables", err)
			return nil, err
		}
		tableNames = append(tableNames, page.TableNames...)
	}
	return tableNames, nil
}

func (c *client) ListIndexes(ctx context.Context, tableName string) ([]models.Index, error) {
	table, err := c.describeTable(ctx, tableName)
	if err != nil {
		return nil, err
	}

	if table.BillingModeSummary != nil && table.BillingModeSummary.BillingMode == types.BillingModePayPerRequest {
		c.logger.Info("table-uses-on-demand-capacity", lager.Data{"table": tableName})
		return nil, nil
	}

	indexes := make([]models.Index, 0, len(table.GlobalSecondaryIndexes))
	for _, gsi := range table.GlobalSecondaryIndexes {
		indexes = append(indexes, models.Index{TableName: tableName, IndexName: aws.ToString(gsi.IndexName)})
	}
	return indexes, nil
}

func (c *client) GetProvisionedCapacity(ctx context.Context, index models.Index) (models.ProvisionedCapacity, error) {
	gsi, err := c.describeIndex(ctx, index)
	if err != nil {
		return models.ProvisionedCapacity{}, err
	}
	if gsi.ProvisionedThroughput == nil {
		return models.ProvisionedCapacity{}, nil
	}
	return models.ProvisionedCapacity{
		ReadUnits:  aws.ToInt64(gsi.ProvisionedThroughput.ReadCapacityUnits),
		WriteUnits: aws.ToInt64(gsi.ProvisionedThroughput.WriteCapacityUnits),
	}, nil
}

func (c *client) GetIndexStatus(ctx context.Context, index models.Index) (string, error) {
	gsi, err := c.describeIndex(ctx, index)
	if err != nil {
		return "", err
	}
	return string(gsi.IndexStatus), nil
}

func (c *client) ApplyCapacity(ctx context.Context, index models.Index, capacity models.ProvisionedCapacity) error {
	logger := c.logger.Session("apply-capacity", lager.Data{"table": index.TableName, "index": index.IndexName, "capacity": capacity})

	if err := c.limiter.Wait(ctx, opUpdateTable); err != nil {
		return err
	}

	_, err := callWithTimeout(ctx, c.requestTimeout, func(ctx context.Context) (*dynamodb.UpdateTableOutput, error) {
		return c.api.UpdateTable(ctx, &dynamodb.UpdateTableInput{
			TableName: aws.String(index.TableName),
			GlobalSecondaryIndexUpdates: []types.GlobalSecondaryIndexUpdate{
				{
					Update: &types.UpdateGlobalSecondaryIndexAction{
						IndexName: aws.String(index.IndexName),
						ProvisionedThroughput: &types.ProvisionedThroughput{
							ReadCapacityUnits:  aws.Int64(capacity.ReadUnits),
							WriteCapacityUnits: aws.Int64(capacity.WriteUnits),
						},
					},
				},
			},
		})
	})
	if err != nil {
		classified := classify(err)
		logger.Debug("update-table-failed", lager.Data{"error": classified.Error()})
		return classified
	}
	return nil
}

func (c *client) describeTable(ctx context.Context, tableName string) (*types.TableDescription, error) {
	if err := c.limiter.Wait(ctx, opDescribeTable); err != nil {
		return nil, err
	}

	out, err := callWithTimeout(ctx, c.requestTimeout, func(ctx context.Context) (*dynamodb.DescribeTableOutput, error) {
		return c.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tableName)})
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("table %s: %w", tableName, models.ErrNotFound)
		}
		c.logger.Error("failed-to-describe-table", err, lager.Data{"table": tableName})
		return nil, err
	}
	if out.Table == nil {
		return nil, fmt.Errorf("table %s: %w", tableName, models.ErrNotFound)
	}
	return out.Table, nil
}

func (c *client) describeIndex(ctx context.Context, index models.Index) (*types.GlobalSecondaryIndexDescription, error) {
	table, err := c.describeTable(ctx, index.TableName)
	if err != nil {
		return nil, err
	}
	for i := range table.GlobalSecondaryIndexes {
		gsi := &table.GlobalSecondaryIndexes[i]
		if aws.ToString(gsi.IndexName) == index.IndexName {
			return gsi, nil
		}
	}
	return nil, fmt.Errorf("index %s: %w", index, models.ErrNotFound)
}

func callWithTimeout[T any](ctx context.Context, timeout time.Duration, call func(context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return call(ctx)
}

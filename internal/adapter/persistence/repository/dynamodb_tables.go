package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EnsureDynamoTables creates the estimate and line tables with their lookup indexes
// when they are missing. Meant for dynamodb-local; production tables are provisioned
// outside the service.
func EnsureDynamoTables(ctx context.Context, ddb *dynamodb.Client) error {
	tables := []struct {
		name  string
		index string
		key   string
	}{
		{getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName), estimateClaimIndexName, "claim_id"},
		{getenvDefault("ESTIMATE_LINES_TABLE", defaultLinesTableName), lineEstimateIndexName, "estimate_id"},
	}
	for _, t := range tables {
		_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName:   aws.String(t.name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String(t.key), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(t.index),
				KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(t.key), KeyType: types.KeyTypeHash}},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			}},
		})
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Printf("[repository][dynamodb] created table=%s", t.name)
		case errors.As(err, &inUse):
		default:
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}

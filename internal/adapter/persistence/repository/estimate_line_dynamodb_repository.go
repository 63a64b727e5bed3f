package repository

import (
	"context"
	"errors"
	"fmt"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/domain/lineerr"
	"estimate_editor/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLinesTableName = "estimate_lines"
	lineEstimateIndexName = "estimate_id-index"
)

type lineItem struct {
	ID              string  `dynamodbav:"id"`
	EstimateID      string  `dynamodbav:"estimate_id"`
	SequenceNumber  int     `dynamodbav:"sequence_number"`
	OperationCode   string  `dynamodbav:"operation_code"`
	Description     string  `dynamodbav:"description"`
	PartType        string  `dynamodbav:"part_type"`
	PartNumber      string  `dynamodbav:"part_number"`
	PartCost        string  `dynamodbav:"part_cost"`
	Quantity        float64 `dynamodbav:"quantity"`
	StripFitHours   float64 `dynamodbav:"strip_fit_hours"`
	RepairHours     float64 `dynamodbav:"repair_hours"`
	PaintHours      float64 `dynamodbav:"paint_hours"`
	SubletCost      string  `dynamodbav:"sublet_cost"`
	IsIncluded      bool    `dynamodbav:"is_included"`
	LineNotes       string  `dynamodbav:"line_notes"`
	PartSubtotal    string  `dynamodbav:"part_subtotal"`
	LaborSubtotal   string  `dynamodbav:"labor_subtotal"`
	PaintSubtotal   string  `dynamodbav:"paint_subtotal"`
	SubletSubtotal  string  `dynamodbav:"sublet_subtotal"`
	SpecialSubtotal string  `dynamodbav:"special_subtotal"`
	LineTotal       string  `dynamodbav:"line_total"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// EstimateLineDynamoRepository persists EstimateLine entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)

type EstimateLineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateLineRepository = (*EstimateLineDynamoRepository)(nil)

func NewEstimateLineDynamoRepository(ddb *dynamodb.Client) *EstimateLineDynamoRepository {
	return &EstimateLineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATE_LINES_TABLE", defaultLinesTableName),
	}
}

func (r *EstimateLineDynamoRepository) Create(ctx context.Context, l entities.EstimateLine) (entities.EstimateLine, error) {
	av, err := attributevalue.MarshalMap(toLineItem(l))
	if err != nil {
		return entities.EstimateLine{}, err
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
		return entities.EstimateLine{}, err
	}
	return l, nil
}

func (r *EstimateLineDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateLine{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateLine{}, nil
	}

	var it lineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateLine{}, err
	}
	return fromLineItem(it), nil
}

func (r *EstimateLineDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateLine, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lineEstimateIndexName),
		KeyConditionExpression: aws.String("#estimate_id = :estimate_id"),
		ExpressionAttributeNames: map[string]string{
			"#estimate_id": "estimate_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
		},
	})

	var lines []entities.EstimateLine
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []lineItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			lines = append(lines, fromLineItem(it))
		}
	}
	return lines, nil
}

// Update replaces the stored line. The line must exist and belong to the same estimate.
func (r *EstimateLineDynamoRepository) Update(ctx context.Context, l entities.EstimateLine) (entities.EstimateLine, error) {
	av, err := attributevalue.MarshalMap(toLineItem(l))
	if err != nil {
		return entities.EstimateLine{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #estimate_id = :estimate_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#estimate_id": "estimate_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id": &types.AttributeValueMemberS{Value: l.EstimateID},
		},
	})
	if err != nil {
		return entities.EstimateLine{}, mapConditionFailure(err, l.ID)
	}
	return l, nil
}

func (r *EstimateLineDynamoRepository) Delete(ctx context.Context, estimateID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #estimate_id = :estimate_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#estimate_id": "estimate_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
		},
	})
	if err != nil {
		return mapConditionFailure(err, id)
	}
	return nil
}

func mapConditionFailure(err error, id string) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return fmt.Errorf("%w: %s", lineerr.ErrNotFound, id)
	}
	return err
}

func toLineItem(l entities.EstimateLine) lineItem {
	return lineItem{
		ID:              l.ID,
		EstimateID:      l.EstimateID,
		SequenceNumber:  l.SequenceNumber,
		OperationCode:   string(l.OperationCode),
		Description:     l.Description,
		PartType:        string(l.PartType),
		PartNumber:      l.PartNumber,
		PartCost:        l.PartCost.String(),
		Quantity:        l.Quantity,
		StripFitHours:   l.StripFitHours,
		RepairHours:     l.RepairHours,
		PaintHours:      l.PaintHours,
		SubletCost:      l.SubletCost.String(),
		IsIncluded:      l.IsIncluded,
		LineNotes:       l.LineNotes,
		PartSubtotal:    l.Subtotals.Part.String(),
		LaborSubtotal:   l.Subtotals.Labor.String(),
		PaintSubtotal:   l.Subtotals.Paint.String(),
		SubletSubtotal:  l.Subtotals.Sublet.String(),
		SpecialSubtotal: l.Subtotals.Special.String(),
		LineTotal:       l.Subtotals.Total.String(),
		UpdatedAt:       formatTime(l.UpdatedAt),
	}
}

func fromLineItem(it lineItem) entities.EstimateLine {
	return entities.EstimateLine{
		ID:             it.ID,
		EstimateID:     it.EstimateID,
		SequenceNumber: it.SequenceNumber,
		OperationCode:  entities.OperationCode(it.OperationCode),
		Description:    it.Description,
		PartType:       entities.PartType(it.PartType),
		PartNumber:     it.PartNumber,
		PartCost:       parseAmount(it.PartCost),
		Quantity:       it.Quantity,
		StripFitHours:  it.StripFitHours,
		RepairHours:    it.RepairHours,
		PaintHours:     it.PaintHours,
		SubletCost:     parseAmount(it.SubletCost),
		IsIncluded:     it.IsIncluded,
		LineNotes:      it.LineNotes,
		Subtotals: entities.LineSubtotals{
			Part:    parseAmount(it.PartSubtotal),
			Labor:   parseAmount(it.LaborSubtotal),
			Paint:   parseAmount(it.PaintSubtotal),
			Sublet:  parseAmount(it.SubletSubtotal),
			Special: parseAmount(it.SpecialSubtotal),
			Total:   parseAmount(it.LineTotal),
		},
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

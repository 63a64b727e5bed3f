package repository

import (
	"context"
	"errors"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimateClaimIndexName    = "claim_id-index"
)

type estimateItem struct {
	ID                      string  `dynamodbav:"id"`
	ClaimID                 string  `dynamodbav:"claim_id"`
	LaborRate               float64 `dynamodbav:"labor_rate"`
	PaintMaterialRate       float64 `dynamodbav:"paint_material_rate"`
	VATRatePercentage       float64 `dynamodbav:"vat_rate_percentage"`
	PartMarkupPercentage    float64 `dynamodbav:"part_markup_percentage"`
	SpecialMarkupPercentage float64 `dynamodbav:"special_markup_percentage"`
	PartSubtotal            string  `dynamodbav:"part_subtotal"`
	LaborSubtotal           string  `dynamodbav:"labor_subtotal"`
	PaintSubtotal           string  `dynamodbav:"paint_subtotal"`
	SubletSubtotal          string  `dynamodbav:"sublet_subtotal"`
	SpecialSubtotal         string  `dynamodbav:"special_subtotal"`
	OtherSubtotal           string  `dynamodbav:"other_subtotal"`
	TotalBeforeVAT          string  `dynamodbav:"total_before_vat"`
	TotalVAT                string  `dynamodbav:"total_vat"`
	TotalAmount             string  `dynamodbav:"total_amount"`
	CreatedAt               string  `dynamodbav:"created_at"`
	UpdatedAt               string  `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: claim_id-index (PK: claim_id)
//
// Money amounts are stored as decimal strings so that totals round-trip exactly.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) GetByClaimID(ctx context.Context, claimID string) (entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimateClaimIndexName),
		KeyConditionExpression: aws.String("#claim_id = :claim_id"),
		ExpressionAttributeNames: map[string]string{
			"#claim_id": "claim_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":claim_id": &types.AttributeValueMemberS{Value: claimID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) UpdateRates(ctx context.Context, id string, rates entities.RateConfig) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #labor_rate = :labor_rate, #paint_material_rate = :paint_material_rate, " +
			"#vat = :vat, #part_markup = :part_markup, #special_markup = :special_markup, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":labor_rate":          &types.AttributeValueMemberN{Value: floatToString(rates.LaborRate)},
			":paint_material_rate": &types.AttributeValueMemberN{Value: floatToString(rates.PaintMaterialRate)},
			":vat":                 &types.AttributeValueMemberN{Value: floatToString(rates.VATRatePercentage)},
			":part_markup":         &types.AttributeValueMemberN{Value: floatToString(rates.PartMarkupPercentage)},
			":special_markup":      &types.AttributeValueMemberN{Value: floatToString(rates.SpecialMarkupPercentage)},
			":updated_at":          &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#labor_rate":          "labor_rate",
			"#paint_material_rate": "paint_material_rate",
			"#vat":                 "vat_rate_percentage",
			"#part_markup":         "part_markup_percentage",
			"#special_markup":      "special_markup_percentage",
			"#updated_at":          "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateTotals(ctx context.Context, id string, totals entities.Totals) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		fields := totalsAttributes(totals)
		expr := "SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		for _, f := range fields {
			expr += ", #" + f.name + " = :" + f.name
			vals[":"+f.name] = &types.AttributeValueMemberS{Value: f.value}
			names["#"+f.name] = f.name
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

type namedAmount struct {
	name  string
	value string
}

func totalsAttributes(t entities.Totals) []namedAmount {
	return []namedAmount{
		{name: "part_subtotal", value: t.PartSubtotal.String()},
		{name: "labor_subtotal", value: t.LaborSubtotal.String()},
		{name: "paint_subtotal", value: t.PaintSubtotal.String()},
		{name: "sublet_subtotal", value: t.SubletSubtotal.String()},
		{name: "special_subtotal", value: t.SpecialSubtotal.String()},
		{name: "other_subtotal", value: t.OtherSubtotal.String()},
		{name: "total_before_vat", value: t.TotalBeforeVAT.String()},
		{name: "total_vat", value: t.TotalVAT.String()},
		{name: "total_amount", value: t.TotalAmount.String()},
	}
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:                      e.ID,
		ClaimID:                 e.ClaimID,
		LaborRate:               e.Rates.LaborRate,
		PaintMaterialRate:       e.Rates.PaintMaterialRate,
		VATRatePercentage:       e.Rates.VATRatePercentage,
		PartMarkupPercentage:    e.Rates.PartMarkupPercentage,
		SpecialMarkupPercentage: e.Rates.SpecialMarkupPercentage,
		PartSubtotal:            e.Totals.PartSubtotal.String(),
		LaborSubtotal:           e.Totals.LaborSubtotal.String(),
		PaintSubtotal:           e.Totals.PaintSubtotal.String(),
		SubletSubtotal:          e.Totals.SubletSubtotal.String(),
		SpecialSubtotal:         e.Totals.SpecialSubtotal.String(),
		OtherSubtotal:           e.Totals.OtherSubtotal.String(),
		TotalBeforeVAT:          e.Totals.TotalBeforeVAT.String(),
		TotalVAT:                e.Totals.TotalVAT.String(),
		TotalAmount:             e.Totals.TotalAmount.String(),
		CreatedAt:               formatTime(e.CreatedAt),
		UpdatedAt:               formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:      it.ID,
		ClaimID: it.ClaimID,
		Rates: entities.RateConfig{
			LaborRate:               it.LaborRate,
			PaintMaterialRate:       it.PaintMaterialRate,
			VATRatePercentage:       it.VATRatePercentage,
			PartMarkupPercentage:    it.PartMarkupPercentage,
			SpecialMarkupPercentage: it.SpecialMarkupPercentage,
		},
		Totals: entities.Totals{
			PartSubtotal:    parseAmount(it.PartSubtotal),
			LaborSubtotal:   parseAmount(it.LaborSubtotal),
			PaintSubtotal:   parseAmount(it.PaintSubtotal),
			SubletSubtotal:  parseAmount(it.SubletSubtotal),
			SpecialSubtotal: parseAmount(it.SpecialSubtotal),
			OtherSubtotal:   parseAmount(it.OtherSubtotal),
			TotalBeforeVAT:  parseAmount(it.TotalBeforeVAT),
			TotalVAT:        parseAmount(it.TotalVAT),
			TotalAmount:     parseAmount(it.TotalAmount),
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// Field names an editable column of an EstimateLine.
type Field string

const (
	FieldSequenceNumber Field = "sequence_number"
	FieldOperationCode  Field = "operation_code"
	FieldDescription    Field = "description"
	FieldPartType       Field = "part_type"
	FieldPartNumber     Field = "part_number"
	FieldPartCost       Field = "part_cost"
	FieldQuantity       Field = "quantity"
	FieldStripFitHours  Field = "strip_fit_hours"
	FieldRepairHours    Field = "repair_hours"
	FieldPaintHours     Field = "paint_hours"
	FieldSubletCost     Field = "sublet_cost"
	FieldIsIncluded     Field = "is_included"
	FieldLineNotes      Field = "line_notes"
)

// ValueKind is the tag of a Value.
type ValueKind int

const (
	KindNumber ValueKind = iota + 1
	KindEnum
	KindText
	KindBool
	KindMoney
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindEnum:
		return "enum"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindMoney:
		return "money"
	}
	return "invalid"
}

// Value is a field value. Exactly one payload is meaningful, selected by Kind.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	flag bool
	amt  decimal.Decimal
}

func NumberValue(v float64) Value { return Value{kind: KindNumber, num: v} }
func EnumValue(v string) Value    { return Value{kind: KindEnum, str: v} }
func TextValue(v string) Value    { return Value{kind: KindText, str: v} }
func BoolValue(v bool) Value      { return Value{kind: KindBool, flag: v} }

func MoneyValue(v decimal.Decimal) Value { return Value{kind: KindMoney, amt: v} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) Number() float64 { return v.num }
func (v Value) Str() string     { return v.str }
func (v Value) Bool() bool      { return v.flag }

func (v Value) Money() decimal.Decimal { return v.amt }
func (v Value) IsZero() bool    { return v.kind == 0 }

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.flag == o.flag
	case KindMoney:
		return v.amt.Equal(o.amt)
	default:
		return v.str == o.str
	}
}

// Interface returns the plain Go value used on the wire. Money goes out as an exact
// JSON number.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindMoney:
		return json.Number(v.amt.String())
	case KindBool:
		return v.flag
	case KindEnum, KindText:
		return v.str
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v Value) String() string {
	return fmt.Sprintf("%v", v.Interface())
}

// FieldSpec describes how a field is validated, displayed and priced.
type FieldSpec struct {
	Kind           ValueKind
	AffectsPricing bool
	Validate       func(Value) error
	Format         func(Value) string
}

var orderedFields = []Field{
	FieldSequenceNumber, FieldOperationCode, FieldDescription, FieldPartType, FieldPartNumber,
	FieldPartCost, FieldQuantity, FieldStripFitHours, FieldRepairHours, FieldPaintHours,
	FieldSubletCost, FieldIsIncluded, FieldLineNotes,
}

var fieldTable = map[Field]FieldSpec{
	FieldSequenceNumber: {Kind: KindNumber, Validate: validateSequence, Format: formatInteger},
	FieldOperationCode:  {Kind: KindEnum, AffectsPricing: true, Validate: validateOperationCode, Format: formatString},
	FieldDescription:    {Kind: KindText, Validate: maxLen(500), Format: formatString},
	FieldPartType:       {Kind: KindEnum, Validate: validatePartType, Format: formatString},
	FieldPartNumber:     {Kind: KindText, Validate: maxLen(64), Format: formatString},
	FieldPartCost:       {Kind: KindMoney, AffectsPricing: true, Validate: nonNegativeMoney, Format: formatMoney},
	FieldQuantity:       {Kind: KindNumber, AffectsPricing: true, Validate: nonNegative, Format: formatMoney},
	FieldStripFitHours:  {Kind: KindNumber, AffectsPricing: true, Validate: nonNegative, Format: formatMoney},
	FieldRepairHours:    {Kind: KindNumber, AffectsPricing: true, Validate: nonNegative, Format: formatMoney},
	FieldPaintHours:     {Kind: KindNumber, AffectsPricing: true, Validate: nonNegative, Format: formatMoney},
	FieldSubletCost:     {Kind: KindMoney, AffectsPricing: true, Validate: nonNegativeMoney, Format: formatMoney},
	FieldIsIncluded:     {Kind: KindBool, AffectsPricing: true, Validate: func(Value) error { return nil }, Format: formatBool},
	FieldLineNotes:      {Kind: KindText, Validate: maxLen(2000), Format: formatString},
}

// Fields returns every editable field in display order.
func Fields() []Field {
	out := make([]Field, len(orderedFields))
	copy(out, orderedFields)
	return out
}

func ParseField(s string) (Field, error) {
	f := Field(strings.TrimSpace(s))
	if _, ok := fieldTable[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

func (f Field) Spec() (FieldSpec, bool) {
	spec, ok := fieldTable[f]
	return spec, ok
}

func (f Field) AffectsPricing() bool {
	return fieldTable[f].AffectsPricing
}

// Check validates v against the field's kind and rules.
func (f Field) Check(v Value) error {
	spec, ok := fieldTable[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	if v.kind != spec.Kind {
		return fmt.Errorf("%w: %s expects %s, got %s", ErrInvalidFieldValue, f, spec.Kind, v.kind)
	}
	return spec.Validate(v)
}

// Format renders v for display.
func (f Field) Format(v Value) string {
	spec, ok := fieldTable[f]
	if !ok {
		return v.String()
	}
	return spec.Format(v)
}

// ParseValue decodes a JSON value into the typed value of the field.
func ParseValue(f Field, raw json.RawMessage) (Value, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return Value{}, fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, f, err)
	}
	return ValueFromAny(f, v)
}

// ValueFromAny converts a decoded JSON value (or a plain Go value) into a typed Value.
// Numbers sent as strings are accepted, as the editing surface often posts raw input text.
func ValueFromAny(f Field, v any) (Value, error) {
	spec, ok := fieldTable[f]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	switch spec.Kind {
	case KindNumber:
		switch n := v.(type) {
		case float64:
			return NumberValue(n), nil
		case int:
			return NumberValue(float64(n)), nil
		case json.Number:
			if parsed, err := n.Float64(); err == nil {
				return NumberValue(parsed), nil
			}
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidFieldValue, f, n)
			}
			return NumberValue(parsed), nil
		}
	case KindMoney:
		switch n := v.(type) {
		case decimal.Decimal:
			return MoneyValue(n), nil
		case float64:
			return MoneyValue(decimal.NewFromFloat(n)), nil
		case int:
			return MoneyValue(decimal.NewFromInt(int64(n))), nil
		case json.Number:
			if d, err := decimal.NewFromString(n.String()); err == nil {
				return MoneyValue(d), nil
			}
		case string:
			d, err := decimal.NewFromString(strings.TrimSpace(n))
			if err != nil {
				return Value{}, fmt.Errorf("%w: %s: %q is not an amount", ErrInvalidFieldValue, f, n)
			}
			return MoneyValue(d), nil
		}
	case KindEnum:
		if s, ok := v.(string); ok {
			return EnumValue(strings.ToUpper(strings.TrimSpace(s))), nil
		}
		if v == nil {
			return EnumValue(""), nil
		}
	case KindText:
		if s, ok := v.(string); ok {
			return TextValue(s), nil
		}
		if v == nil {
			return TextValue(""), nil
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return BoolValue(b), nil
		}
	}
	return Value{}, fmt.Errorf("%w: %s expects %s", ErrInvalidFieldValue, f, spec.Kind)
}

// Get reads a field of the line as a typed value.
func (l EstimateLine) Get(f Field) Value {
	switch f {
	case FieldSequenceNumber:
		return NumberValue(float64(l.SequenceNumber))
	case FieldOperationCode:
		return EnumValue(string(l.OperationCode))
	case FieldDescription:
		return TextValue(l.Description)
	case FieldPartType:
		return EnumValue(string(l.PartType))
	case FieldPartNumber:
		return TextValue(l.PartNumber)
	case FieldPartCost:
		return MoneyValue(l.PartCost)
	case FieldQuantity:
		return NumberValue(l.Quantity)
	case FieldStripFitHours:
		return NumberValue(l.StripFitHours)
	case FieldRepairHours:
		return NumberValue(l.RepairHours)
	case FieldPaintHours:
		return NumberValue(l.PaintHours)
	case FieldSubletCost:
		return MoneyValue(l.SubletCost)
	case FieldIsIncluded:
		return BoolValue(l.IsIncluded)
	case FieldLineNotes:
		return TextValue(l.LineNotes)
	}
	return Value{}
}

// Set validates v and writes it into the line.
func (l *EstimateLine) Set(f Field, v Value) error {
	if err := f.Check(v); err != nil {
		return err
	}
	switch f {
	case FieldSequenceNumber:
		l.SequenceNumber = int(v.num)
	case FieldOperationCode:
		l.OperationCode = OperationCode(v.str)
	case FieldDescription:
		l.Description = v.str
	case FieldPartType:
		l.PartType = PartType(v.str)
	case FieldPartNumber:
		l.PartNumber = v.str
	case FieldPartCost:
		l.PartCost = v.amt
	case FieldQuantity:
		l.Quantity = v.num
	case FieldStripFitHours:
		l.StripFitHours = v.num
	case FieldRepairHours:
		l.RepairHours = v.num
	case FieldPaintHours:
		l.PaintHours = v.num
	case FieldSubletCost:
		l.SubletCost = v.amt
	case FieldIsIncluded:
		l.IsIncluded = v.flag
	case FieldLineNotes:
		l.LineNotes = v.str
	}
	return nil
}

// FieldSet is a row-scoped diff: the latest value per changed field.
type FieldSet map[Field]Value

// Clone returns an independent copy.
func (s FieldSet) Clone() FieldSet {
	out := make(FieldSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Wire converts the diff to the JSON shape used by the line service.
func (s FieldSet) Wire() map[string]any {
	out := make(map[string]any, len(s))
	for k, v := range s {
		out[string(k)] = v.Interface()
	}
	return out
}

// FieldSetFromWire decodes the JSON diff shape, rejecting unknown fields.
func FieldSetFromWire(m map[string]any) (FieldSet, error) {
	out := make(FieldSet, len(m))
	for k, raw := range m {
		f, err := ParseField(k)
		if err != nil {
			return nil, err
		}
		v, err := ValueFromAny(f, raw)
		if err != nil {
			return nil, err
		}
		out[f] = v
	}
	return out, nil
}

func validateSequence(v Value) error {
	if v.num < 1 || v.num != math.Trunc(v.num) {
		return fmt.Errorf("%w: sequence_number must be a positive integer", ErrInvalidFieldValue)
	}
	return nil
}

func validateOperationCode(v Value) error {
	if !OperationCode(v.str).Valid() {
		return fmt.Errorf("%w: unknown operation_code %q", ErrInvalidFieldValue, v.str)
	}
	return nil
}

func validatePartType(v Value) error {
	if !PartType(v.str).Valid() {
		return fmt.Errorf("%w: unknown part_type %q", ErrInvalidFieldValue, v.str)
	}
	return nil
}

func nonNegative(v Value) error {
	if math.IsNaN(v.num) || math.IsInf(v.num, 0) || v.num < 0 {
		return fmt.Errorf("%w: value must be a non-negative number", ErrInvalidFieldValue)
	}
	return nil
}

func nonNegativeMoney(v Value) error {
	if v.amt.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidFieldValue)
	}
	return nil
}

func maxLen(n int) func(Value) error {
	return func(v Value) error {
		if len([]rune(v.str)) > n {
			return fmt.Errorf("%w: text longer than %d characters", ErrInvalidFieldValue, n)
		}
		return nil
	}
}

func formatMoney(v Value) string {
	if v.kind == KindMoney {
		return v.amt.StringFixed(2)
	}
	return decimal.NewFromFloat(v.num).StringFixed(2)
}

func formatInteger(v Value) string {
	return strconv.FormatInt(int64(v.num), 10)
}

func formatString(v Value) string {
	return v.str
}

func formatBool(v Value) string {
	if v.flag {
		return "yes"
	}
	return "no"
}

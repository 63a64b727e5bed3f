package entities

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestField_SetAndGet(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		value Value
	}{
		{name: "sequence", field: FieldSequenceNumber, value: NumberValue(3)},
		{name: "operation code", field: FieldOperationCode, value: EnumValue("PAINT")},
		{name: "description", field: FieldDescription, value: TextValue("Front bumper")},
		{name: "part type", field: FieldPartType, value: EnumValue("OEM")},
		{name: "part type cleared", field: FieldPartType, value: EnumValue("")},
		{name: "part cost", field: FieldPartCost, value: MoneyValue(decimal.RequireFromString("199.99"))},
		{name: "sublet cost", field: FieldSubletCost, value: MoneyValue(decimal.NewFromInt(450))},
		{name: "quantity", field: FieldQuantity, value: NumberValue(2)},
		{name: "paint hours", field: FieldPaintHours, value: NumberValue(1.5)},
		{name: "included", field: FieldIsIncluded, value: BoolValue(false)},
		{name: "notes", field: FieldLineNotes, value: TextValue("check clips")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line := NewBlankLine("l-1", "est-1", 1)
			if err := line.Set(tc.field, tc.value); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := line.Get(tc.field); !got.Equal(tc.value) {
				t.Fatalf("expected %v, got %v", tc.value, got)
			}
		})
	}
}

func TestField_SetRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		value Value
	}{
		{name: "negative cost", field: FieldPartCost, value: MoneyValue(decimal.NewFromInt(-1))},
		{name: "cost as plain number", field: FieldPartCost, value: NumberValue(10)},
		{name: "fractional sequence", field: FieldSequenceNumber, value: NumberValue(1.5)},
		{name: "zero sequence", field: FieldSequenceNumber, value: NumberValue(0)},
		{name: "unknown operation", field: FieldOperationCode, value: EnumValue("WELD")},
		{name: "unknown part type", field: FieldPartType, value: EnumValue("SCRAP")},
		{name: "wrong kind", field: FieldQuantity, value: TextValue("2")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line := NewBlankLine("l-1", "est-1", 1)
			before := line
			err := line.Set(tc.field, tc.value)
			if !errors.Is(err, ErrInvalidFieldValue) {
				t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
			}
			if line != before {
				t.Fatalf("line must not change on rejected value")
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(FieldPartCost, json.RawMessage(`"12.5"`))
	if err != nil || !v.Money().Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("expected 12.5 from string input, got %v err=%v", v, err)
	}

	v, err = ParseValue(FieldQuantity, json.RawMessage(`2.5`))
	if err != nil || v.Number() != 2.5 {
		t.Fatalf("expected quantity 2.5, got %v err=%v", v, err)
	}

	v, err = ParseValue(FieldOperationCode, json.RawMessage(`" special "`))
	if err != nil || v.Str() != "SPECIAL" {
		t.Fatalf("expected normalized enum, got %v err=%v", v, err)
	}

	if _, err := ParseValue(FieldIsIncluded, json.RawMessage(`"yes"`)); !errors.Is(err, ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}

	if _, err := ParseField("color"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestField_Format(t *testing.T) {
	if got := FieldPartCost.Format(MoneyValue(decimal.RequireFromString("2.005"))); got != "2.01" {
		t.Fatalf("expected half-up 2.01, got %s", got)
	}
	if got := FieldSequenceNumber.Format(NumberValue(7)); got != "7" {
		t.Fatalf("expected 7, got %s", got)
	}
	if got := FieldIsIncluded.Format(BoolValue(true)); got != "yes" {
		t.Fatalf("expected yes, got %s", got)
	}
}

func TestMoneyValue_KeepsExactAmounts(t *testing.T) {
	sum := decimal.Zero
	for i := 0; i < 3; i++ {
		v, err := ParseValue(FieldSubletCost, json.RawMessage(`0.1`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum = sum.Add(v.Money())
	}
	if !sum.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("expected exactly 0.3, got %s", sum)
	}

	line := NewBlankLine("l-1", "est-1", 1)
	if err := line.Set(FieldSubletCost, MoneyValue(decimal.RequireFromString("1234567.89"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wire, err := json.Marshal(FieldSet{FieldSubletCost: line.Get(FieldSubletCost)}.Wire())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(wire) != `{"sublet_cost":1234567.89}` {
		t.Fatalf("expected an exact JSON number, got %s", wire)
	}
}

func TestFieldTable_PricingRelevance(t *testing.T) {
	if !FieldRepairHours.AffectsPricing() || !FieldIsIncluded.AffectsPricing() {
		t.Fatalf("hours and inclusion must affect pricing")
	}
	if FieldDescription.AffectsPricing() || FieldLineNotes.AffectsPricing() {
		t.Fatalf("free text must not affect pricing")
	}
	for _, f := range Fields() {
		if _, ok := f.Spec(); !ok {
			t.Fatalf("field %s missing from table", f)
		}
	}
}

func TestFieldSet_WireRoundTrip(t *testing.T) {
	in := FieldSet{FieldQuantity: NumberValue(3), FieldIsIncluded: BoolValue(false), FieldPartCost: MoneyValue(decimal.RequireFromString("80.25"))}
	out, err := FieldSetFromWire(in.Wire())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out[FieldPartCost].Equal(in[FieldPartCost]) {
		t.Fatalf("expected the amount to survive, got %v", out[FieldPartCost])
	}
	if len(out) != 3 || !out[FieldQuantity].Equal(NumberValue(3)) || !out[FieldIsIncluded].Equal(BoolValue(false)) {
		t.Fatalf("unexpected set: %v", out)
	}

	if _, err := FieldSetFromWire(map[string]any{"subtotal": 1.0}); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestTemporaryID(t *testing.T) {
	id := TemporaryID("abc")
	if !IsTemporaryID(id) || IsTemporaryID("abc") {
		t.Fatalf("temporary id detection failed for %q", id)
	}
}

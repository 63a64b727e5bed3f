package editing

import (
	"reflect"
	"testing"

	"estimate_editor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestResolve(t *testing.T) {
	local := serverLines()[0]
	local.Quantity = 5
	local.Description = "local"
	local.PartNumber = "P-LOCAL"

	incoming := serverLines()[0]
	incoming.Quantity = 3
	incoming.Description = "server"
	incoming.PartNumber = "P-SERVER"
	incoming.PartCost = decimal.NewFromInt(120)

	states := map[entities.Field]FieldState{
		entities.FieldQuantity:    {Focused: true},
		entities.FieldDescription: {Outstanding: true},
		entities.FieldPartNumber:  {HasBackup: true, Backup: entities.TextValue("P-BACKUP")},
	}
	res := Resolve(local, incoming, func(f entities.Field) FieldState { return states[f] })

	if res.Line.Quantity != 5 || res.Kept[entities.FieldQuantity] != TierFocus {
		t.Fatalf("focused field must keep the local value, got %v", res.Line.Quantity)
	}
	if res.Line.Description != "local" || res.Kept[entities.FieldDescription] != TierOutstanding {
		t.Fatalf("outstanding field must keep the local value, got %q", res.Line.Description)
	}
	if res.Line.PartNumber != "P-BACKUP" || len(res.Restored) != 1 {
		t.Fatalf("backup must be restored, got %q %v", res.Line.PartNumber, res.Restored)
	}
	if !res.Line.PartCost.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("unprotected field must take the server value, got %v", res.Line.PartCost)
	}
}

func TestResolve_PriorityOrder(t *testing.T) {
	local := serverLines()[0]
	local.Quantity = 5
	incoming := serverLines()[0]

	res := Resolve(local, incoming, func(f entities.Field) FieldState {
		if f == entities.FieldQuantity {
			return FieldState{Focused: true, Outstanding: true, HasBackup: true, Backup: entities.NumberValue(8)}
		}
		return FieldState{}
	})
	if res.Line.Quantity != 5 || len(res.Restored) != 0 {
		t.Fatalf("focus must win over backup, got %v", res.Line.Quantity)
	}
}

func TestResolve_CleanLineTakesServer(t *testing.T) {
	local := serverLines()[1]
	incoming := serverLines()[1]
	incoming.RepairHours = 6

	res := Resolve(local, incoming, func(entities.Field) FieldState { return FieldState{} })
	if !reflect.DeepEqual(res.Line, incoming) {
		t.Fatalf("expected incoming line unchanged")
	}
	if len(res.Overwritten) != 1 || res.Overwritten[0] != entities.FieldRepairHours {
		t.Fatalf("expected repair_hours overwritten, got %v", res.Overwritten)
	}
}

func TestResolve_BackupEqualToServerIsNotRestored(t *testing.T) {
	line := serverLines()[0]
	res := Resolve(line, line, func(f entities.Field) FieldState {
		if f == entities.FieldQuantity {
			return FieldState{HasBackup: true, Backup: entities.NumberValue(line.Quantity)}
		}
		return FieldState{}
	})
	if len(res.Restored) != 0 {
		t.Fatalf("expected nothing restored, got %v", res.Restored)
	}
}

package editing

import "estimate_editor/internal/domain/entities"

// Tier is the provenance that decides whether a local field value survives a merge.
type Tier int

const (
	TierServer Tier = iota
	TierFocus
	TierOutstanding
	TierBackup
)

func (t Tier) String() string {
	switch t {
	case TierFocus:
		return "focus"
	case TierOutstanding:
		return "outstanding"
	case TierBackup:
		return "backup"
	}
	return "server"
}

// FieldState is what the session knows about one field when a snapshot arrives.
type FieldState struct {
	Focused     bool
	Outstanding bool
	Backup      entities.Value
	HasBackup   bool
}

func (s FieldState) tier() Tier {
	switch {
	case s.Focused:
		return TierFocus
	case s.Outstanding:
		return TierOutstanding
	case s.HasBackup:
		return TierBackup
	}
	return TierServer
}

// Resolution is the outcome of merging one incoming line.
type Resolution struct {
	Line        entities.EstimateLine
	Kept        map[entities.Field]Tier
	Restored    []entities.Field
	Overwritten []entities.Field
}

// Resolve merges an incoming server line into the local one.
//
// Fields under focus or with an outstanding write keep the local value. A field with
// neither but a live backup entry takes the backed-up value. Every other field takes the
// server value. A line with no protected field is accepted as is.
func Resolve(local, incoming entities.EstimateLine, state func(entities.Field) FieldState) Resolution {
	res := Resolution{Line: incoming, Kept: map[entities.Field]Tier{}}
	for _, f := range entities.Fields() {
		st := state(f)
		switch st.tier() {
		case TierFocus, TierOutstanding:
			_ = res.Line.Set(f, local.Get(f))
			res.Kept[f] = st.tier()
		case TierBackup:
			if st.Backup.Equal(incoming.Get(f)) {
				continue
			}
			if err := res.Line.Set(f, st.Backup); err != nil {
				continue
			}
			res.Restored = append(res.Restored, f)
		default:
			if !local.Get(f).Equal(incoming.Get(f)) {
				res.Overwritten = append(res.Overwritten, f)
			}
		}
	}
	return res
}

package store

import (
	"time"

	"github.com/minsu-seo/vocadrill/internal/model"
)

// nowISO is swapped in tests.
var nowISO = func() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Normalize fills the gaps older record schemas left behind and reports
// whether the record changed. Each rule is idempotent and only fills missing
// data, so running it on a normalized record is a no-op.
//
// Timestamping a legacy record with the current time is the one rule with an
// observable side effect.
func Normalize(rec *model.WordRecord) bool {
	changed := false
	if rec.Tags == nil {
		rec.Tags = model.TagList{}
		changed = true
	}
	if rec.Examples == nil {
		rec.Examples = []string{}
		changed = true
	}
	if rec.Stats == nil {
		rec.Stats = map[model.Mode]*model.StatPair{}
		changed = true
	}
	for _, mode := range model.RequiredModes {
		if pair := rec.Stats[mode]; pair == nil {
			rec.Stats[mode] = &model.StatPair{}
			changed = true
		}
	}
	if rec.AddedAt == "" {
		rec.AddedAt = nowISO()
		changed = true
	}
	return changed
}

package stats

import (
	"sort"

	"github.com/minsu-seo/vocadrill/internal/model"
)

// WeakWord is a word ranked by its error rate in one mode.
type WeakWord struct {
	Key       string
	Correct   int
	Wrong     int
	ErrorRate float64
}

// WeakestWords returns the top N words with the highest error rate in the
// given mode. Words never attempted in that mode are skipped.
func WeakestWords(words map[string]*model.WordRecord, mode model.Mode, n int) []WeakWord {
	if n <= 0 {
		return nil
	}
	out := make([]WeakWord, 0, len(words))
	for key, rec := range words {
		pair := rec.Stats[mode]
		if pair == nil || pair.Total() == 0 {
			continue
		}
		out = append(out, WeakWord{
			Key:       key,
			Correct:   pair.Correct,
			Wrong:     pair.Wrong,
			ErrorRate: float64(pair.Wrong) / float64(pair.Total()),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ErrorRate == out[j].ErrorRate {
			if out[i].Wrong == out[j].Wrong {
				return out[i].Key < out[j].Key
			}
			return out[i].Wrong > out[j].Wrong
		}
		return out[i].ErrorRate > out[j].ErrorRate
	})
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}

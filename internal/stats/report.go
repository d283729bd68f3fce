package stats

import (
	"context"

	"github.com/verte-zerg/tuivoc/internal/model"
	"github.com/verte-zerg/tuivoc/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Records []model.RehearsalRecord
	Summary Summary
}

// BuildReport loads the most recent last sessions (all when last <= 0).
func BuildReport(ctx context.Context, st *store.Store, last int) (Report, error) {
	records, err := st.ListRehearsals(ctx, last)
	if err != nil {
		return Report{}, err
	}
	return Report{Records: records, Summary: Summarize(records)}, nil
}

// WordsPerSession returns words shown per session, oldest first.
func (r Report) WordsPerSession() []float64 {
	values := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		values[i] = float64(rec.WordsShown)
	}
	return values
}

package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuivoc/internal/model"
	"github.com/verte-zerg/tuivoc/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "tuivoc.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Hour)
		rec := model.RehearsalRecord{
			ID:              "session-" + string(rune('0'+i)),
			StartedAt:       start,
			EndedAt:         start.Add(time.Minute),
			TotalSeconds:    60,
			IntervalSeconds: 5,
			ElapsedSeconds:  30 + i*15,
			WordsShown:      6 + i,
			Completed:       i == 2,
		}
		if err := st.InsertRehearsal(ctx, rec); err != nil {
			t.Fatalf("insert rehearsal: %v", err)
		}
	}

	report, err := BuildReport(ctx, st, 2)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Records) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(report.Records))
	}
	if report.Records[0].ID != "session-1" || report.Records[1].ID != "session-2" {
		t.Fatalf("unexpected session ids: %+v", report.Records)
	}
	want := Summary{Sessions: 2, Completed: 1, PracticeSeconds: 105, WordsShown: 15}
	if report.Summary != want {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}

	var buf bytes.Buffer
	if err := RenderReport(&buf, report); err != nil {
		t.Fatalf("render report: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"Sessions: 2 (1 completed)", "Practice time: 00:01:45", "Words shown: 15", "Interval"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("expected %q in output:\n%s", needle, out)
		}
	}
}

func TestRenderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, Report{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No rehearsals yet." {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

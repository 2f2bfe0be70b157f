package cli

import (
	"testing"

	"github.com/tbickford/agplan/internal/plan"
)

func TestEventDetails(t *testing.T) {
	tests := []struct {
		name  string
		event plan.HistoryEvent
		want  string
	}{
		{
			name: "seeded",
			event: plan.HistoryEvent{
				Event: plan.EventPlanSeeded,
				Data:  map[string]any{"term_year": "2025-2026"},
			},
			want: "term 2025-2026",
		},
		{
			name: "task added",
			event: plan.HistoryEvent{
				Event: plan.EventTaskAdded,
				Data:  map[string]any{"task_id": float64(89), "name": "Book AV vendor"},
			},
			want: "task 89: Book AV vendor",
		},
		{
			name: "task updated",
			event: plan.HistoryEvent{
				Event: plan.EventTaskUpdated,
				Data:  map[string]any{"task_id": float64(4)},
			},
			want: "task 4",
		},
		{
			name: "report",
			event: plan.HistoryEvent{
				Event: plan.EventReportGenerated,
				Data:  map[string]any{"term_year": "2025-2026", "style": "executive"},
			},
			want: "executive style",
		},
		{
			name:  "unknown",
			event: plan.HistoryEvent{Event: "something_else"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eventDetails(tt.event); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

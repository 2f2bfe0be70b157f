// Package analysis summarizes the workspace history log into activity
// statistics for the committee.
package analysis

import (
	"sort"

	"github.com/tbickford/agplan/internal/plan"
)

// TaskActivity counts how often a single task was touched.
type TaskActivity struct {
	TaskID  int
	Name    string
	Touches int
}

// Summary is an aggregate view over the history log.
type Summary struct {
	Total       int
	EventCounts map[string]int
	// MostEdited lists tasks by edit count, busiest first. Only tasks
	// touched more than once appear.
	MostEdited []TaskActivity
}

// Summarize aggregates history events. Task names are resolved against
// the current plan where the task still exists.
func Summarize(events []plan.HistoryEvent, p *plan.Plan) Summary {
	s := Summary{
		Total:       len(events),
		EventCounts: make(map[string]int),
	}

	touches := make(map[int]int)
	names := make(map[int]string)
	for _, event := range events {
		s.EventCounts[event.Event]++

		switch event.Event {
		case plan.EventTaskAdded, plan.EventTaskUpdated, plan.EventTaskRemoved, plan.EventTaskRestored:
			id, ok := eventTaskID(event)
			if !ok {
				continue
			}
			touches[id]++
			if name, ok := event.Data["name"].(string); ok && name != "" {
				names[id] = name
			}
		}
	}

	for id, n := range touches {
		if n < 2 {
			continue
		}
		name := names[id]
		if p != nil {
			if t, ok := p.FindTask(id); ok {
				name = t.Name
			}
		}
		s.MostEdited = append(s.MostEdited, TaskActivity{TaskID: id, Name: name, Touches: n})
	}
	sort.Slice(s.MostEdited, func(i, j int) bool {
		if s.MostEdited[i].Touches != s.MostEdited[j].Touches {
			return s.MostEdited[i].Touches > s.MostEdited[j].Touches
		}
		return s.MostEdited[i].TaskID < s.MostEdited[j].TaskID
	})

	return s
}

// Recent returns the last n events, newest first.
func Recent(events []plan.HistoryEvent, n int) []plan.HistoryEvent {
	if n <= 0 || len(events) == 0 {
		return nil
	}
	if n > len(events) {
		n = len(events)
	}

	out := make([]plan.HistoryEvent, 0, n)
	for i := len(events) - 1; i >= len(events)-n; i-- {
		out = append(out, events[i])
	}
	return out
}

// eventTaskID reads the task id from an event's data. JSON numbers
// decode as float64.
func eventTaskID(event plan.HistoryEvent) (int, bool) {
	v, ok := event.Data["task_id"].(float64)
	if !ok {
		return 0, false
	}
	return int(v), true
}

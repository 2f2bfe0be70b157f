package plan

// Empty-state messages shown when a projection has no tasks. These are
// observable output, not presentation detail, and tests rely on them.
const (
	EmptyBaselineMessage  = "All baseline tasks completed. Great job!"
	EmptyAddedMessage     = "No custom tasks have been added, or all added tasks are complete."
	EmptyCompletedMessage = "No tasks have been completed yet."
	EmptyRemovedMessage   = "No tasks have been removed."
)

// project maps each period through keep and drops periods left empty.
// Period order and in-period task order are preserved.
func (p *Plan) project(keep func(Task) bool) []Period {
	var out []Period
	for _, period := range p.Periods {
		var tasks []Task
		for _, t := range period.Tasks {
			if keep(t) {
				tasks = append(tasks, t)
			}
		}
		if len(tasks) > 0 {
			out = append(out, Period{Name: period.Name, Tasks: tasks})
		}
	}
	return out
}

// BaselineView returns periods of open tasks that were not added by the
// user: status outside {Completed, Removed} and source other than
// "User Added". User-added baseline tasks carry a distinct source label
// and so appear here.
func (p *Plan) BaselineView() []Period {
	return p.project(func(t Task) bool {
		return t.Status != StatusCompleted && t.Status != StatusRemoved && t.Source != SourceUserAdded
	})
}

// AddedView returns periods of open user-added tasks.
func (p *Plan) AddedView() []Period {
	return p.project(func(t Task) bool {
		return t.Status != StatusCompleted && t.Status != StatusRemoved && t.Source == SourceUserAdded
	})
}

// CompletedView returns periods of completed tasks regardless of source.
func (p *Plan) CompletedView() []Period {
	return p.project(func(t Task) bool {
		return t.Status == StatusCompleted
	})
}

// RemovedView returns periods of removed tasks regardless of source.
func (p *Plan) RemovedView() []Period {
	return p.project(func(t Task) bool {
		return t.Status == StatusRemoved
	})
}

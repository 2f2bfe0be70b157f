package plan

// Task is one unit of committee work. Dates are calendar dates in
// YYYY-MM-DD form; a task is never physically deleted, removal is the
// Removed status.
type Task struct {
	ID          int          `json:"id"`
	Name        string       `json:"taskName"`
	Responsible string       `json:"responsible"`
	StartDate   string       `json:"startDate"`
	DueDate     string       `json:"dueDate"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	Source      string       `json:"source"`
	Comments    string       `json:"comments"`
	Excerpts    []Excerpt    `json:"excerpts,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Excerpt is a quoted passage from a source document, kept for
// provenance display.
type Excerpt struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// Attachment is a file stored inline as base64-encoded content.
type Attachment struct {
	FileName    string `json:"fileName"`
	FileContent string `json:"fileContent"`
	FileType    string `json:"fileType"`
}

// Task status constants
const (
	StatusNotStarted = "Not-Started"
	StatusInProgress = "In-Progress"
	StatusCompleted  = "Completed"
	StatusRemoved    = "Removed"
)

// Task priority constants
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Source labels for user-added tasks. Seeded tasks carry their own
// provenance labels (e.g. "Program Committee Checklist").
const (
	SourceUserAdded         = "User Added"
	SourceUserAddedBaseline = "User Added (Baseline)"
)

// statusLabels maps each status to its display label. Labels are an
// explicit table rather than string transformations of the enum value.
var statusLabels = map[string]string{
	StatusNotStarted: "Not Started",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
	StatusRemoved:    "Removed",
}

// StatusLabel returns the display label for a status value.
// Unknown values are returned verbatim.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// ValidStatus reports whether s is one of the four closed status values.
func ValidStatus(s string) bool {
	_, ok := statusLabels[s]
	return ok
}

// ValidPriority reports whether p is one of the three closed priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Active reports whether the task is part of the working plan,
// i.e. not removed.
func (t Task) Active() bool {
	return t.Status != StatusRemoved
}

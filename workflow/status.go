// Package workflow holds the job-card lifecycle: the status set, the
// recommended next action per status, client notification templates and the
// parts/labour totals calculation. Everything here is pure; persistence is
// the controllers' job.
package workflow

// Status is one of the 11 job-card lifecycle states.
type Status string

const (
	StatusReceived      Status = "received"
	StatusDiagnosing    Status = "diagnosing"
	StatusDiagnosed     Status = "diagnosed"
	StatusQuoted        Status = "quoted"
	StatusApproved      Status = "approved"
	StatusInProgress    Status = "in_progress"
	StatusAwaitingParts Status = "awaiting_parts"
	StatusQualityCheck  Status = "quality_check"
	StatusCompleted     Status = "completed"
	StatusInvoiced      Status = "invoiced"
	StatusCollected     Status = "collected"
)

// Statuses lists all states in typical progression order. The guided flow is
// advisory only: operators may jump to any state directly, so this order is
// presentation, not enforcement.
var Statuses = []Status{
	StatusReceived,
	StatusDiagnosing,
	StatusDiagnosed,
	StatusQuoted,
	StatusApproved,
	StatusInProgress,
	StatusAwaitingParts,
	StatusQualityCheck,
	StatusCompleted,
	StatusInvoiced,
	StatusCollected,
}

// Meta carries the render metadata every screen shares. Defined once here so
// label/colour maps are not re-declared per consumer.
type Meta struct {
	Label    string `json:"label"`
	Color    string `json:"color"`
	Terminal bool   `json:"terminal"`
}

var statusMeta = map[Status]Meta{
	StatusReceived:      {Label: "Received", Color: "slate"},
	StatusDiagnosing:    {Label: "Diagnosing", Color: "amber"},
	StatusDiagnosed:     {Label: "Diagnosed", Color: "amber"},
	StatusQuoted:        {Label: "Quoted", Color: "blue"},
	StatusApproved:      {Label: "Approved", Color: "blue"},
	StatusInProgress:    {Label: "In Progress", Color: "indigo"},
	StatusAwaitingParts: {Label: "Awaiting Parts", Color: "orange"},
	StatusQualityCheck:  {Label: "Quality Check", Color: "purple"},
	StatusCompleted:     {Label: "Completed", Color: "green"},
	StatusInvoiced:      {Label: "Invoiced", Color: "teal"},
	StatusCollected:     {Label: "Collected", Color: "gray", Terminal: true},
}

// Valid reports whether s is one of the defined lifecycle states.
func (s Status) Valid() bool {
	_, ok := statusMeta[s]
	return ok
}

// Meta returns the shared render metadata for s (zero value for unknown states).
func (s Status) Meta() Meta {
	return statusMeta[s]
}

// Label returns the human-readable name for s.
func (s Status) Label() string {
	return statusMeta[s].Label
}

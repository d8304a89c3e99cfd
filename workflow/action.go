package workflow

// ActionKind distinguishes plain status transitions from actions that open a
// document generator instead of changing status.
type ActionKind string

const (
	ActionTransition    ActionKind = "transition"
	ActionCreateQuote   ActionKind = "create_quote"
	ActionCreateInvoice ActionKind = "create_invoice"
)

// Action is the single recommended forward step for a job card.
// Next is empty for generator actions (the generator sets the status itself).
type Action struct {
	Label string     `json:"label"`
	Kind  ActionKind `json:"kind"`
	Next  Status     `json:"next_status,omitempty"`
}

// NextAction returns the recommended action for the given status, or nil when
// no forward action applies (awaiting_parts, collected, or completed with no
// line items). It is total and deterministic over the status domain; unknown
// statuses map to nil. It never enforces anything: out-of-order manual
// transitions remain legal through the status update endpoint.
func NextAction(s Status, hasLineItems bool) *Action {
	switch s {
	case StatusReceived:
		return &Action{Label: "Start Diagnosis", Kind: ActionTransition, Next: StatusDiagnosing}
	case StatusDiagnosing:
		return &Action{Label: "Mark Diagnosed", Kind: ActionTransition, Next: StatusDiagnosed}
	case StatusDiagnosed:
		return &Action{Label: "Create Quote", Kind: ActionCreateQuote}
	case StatusQuoted:
		return &Action{Label: "Mark Approved", Kind: ActionTransition, Next: StatusApproved}
	case StatusApproved:
		return &Action{Label: "Start Work", Kind: ActionTransition, Next: StatusInProgress}
	case StatusInProgress, StatusQualityCheck:
		return &Action{Label: "Mark Completed", Kind: ActionTransition, Next: StatusCompleted}
	case StatusCompleted:
		if !hasLineItems {
			return nil
		}
		return &Action{Label: "Create Invoice", Kind: ActionCreateInvoice}
	case StatusInvoiced:
		return &Action{Label: "Mark Collected", Kind: ActionTransition, Next: StatusCollected}
	}
	return nil
}

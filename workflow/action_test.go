package workflow

import "testing"

func TestNextActionTable(t *testing.T) {
	cases := []struct {
		status       Status
		hasLineItems bool
		wantLabel    string // "" => nil action expected
		wantKind     ActionKind
		wantNext     Status
	}{
		{StatusReceived, false, "Start Diagnosis", ActionTransition, StatusDiagnosing},
		{StatusReceived, true, "Start Diagnosis", ActionTransition, StatusDiagnosing},
		{StatusDiagnosing, false, "Mark Diagnosed", ActionTransition, StatusDiagnosed},
		{StatusDiagnosing, true, "Mark Diagnosed", ActionTransition, StatusDiagnosed},
		{StatusDiagnosed, false, "Create Quote", ActionCreateQuote, ""},
		{StatusDiagnosed, true, "Create Quote", ActionCreateQuote, ""},
		{StatusQuoted, false, "Mark Approved", ActionTransition, StatusApproved},
		{StatusQuoted, true, "Mark Approved", ActionTransition, StatusApproved},
		{StatusApproved, false, "Start Work", ActionTransition, StatusInProgress},
		{StatusApproved, true, "Start Work", ActionTransition, StatusInProgress},
		{StatusInProgress, false, "Mark Completed", ActionTransition, StatusCompleted},
		{StatusInProgress, true, "Mark Completed", ActionTransition, StatusCompleted},
		{StatusAwaitingParts, false, "", "", ""},
		{StatusAwaitingParts, true, "", "", ""},
		{StatusQualityCheck, false, "Mark Completed", ActionTransition, StatusCompleted},
		{StatusQualityCheck, true, "Mark Completed", ActionTransition, StatusCompleted},
		{StatusCompleted, false, "", "", ""},
		{StatusCompleted, true, "Create Invoice", ActionCreateInvoice, ""},
		{StatusInvoiced, false, "Mark Collected", ActionTransition, StatusCollected},
		{StatusInvoiced, true, "Mark Collected", ActionTransition, StatusCollected},
		{StatusCollected, false, "", "", ""},
		{StatusCollected, true, "", "", ""},
	}

	for _, tc := range cases {
		got := NextAction(tc.status, tc.hasLineItems)
		if tc.wantLabel == "" {
			if got != nil {
				t.Errorf("NextAction(%s, %v) = %+v, want nil", tc.status, tc.hasLineItems, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("NextAction(%s, %v) = nil, want %q", tc.status, tc.hasLineItems, tc.wantLabel)
			continue
		}
		if got.Label != tc.wantLabel || got.Kind != tc.wantKind || got.Next != tc.wantNext {
			t.Errorf("NextAction(%s, %v) = {%q %s %q}, want {%q %s %q}",
				tc.status, tc.hasLineItems, got.Label, got.Kind, got.Next,
				tc.wantLabel, tc.wantKind, tc.wantNext)
		}
	}
}

func TestNextActionUnknownStatus(t *testing.T) {
	if got := NextAction(Status("bogus"), true); got != nil {
		t.Fatalf("NextAction(bogus) = %+v, want nil", got)
	}
}

func TestNextActionDeterministic(t *testing.T) {
	for _, s := range Statuses {
		for _, has := range []bool{false, true} {
			a := NextAction(s, has)
			b := NextAction(s, has)
			if (a == nil) != (b == nil) {
				t.Fatalf("NextAction(%s, %v) not deterministic", s, has)
			}
			if a != nil && *a != *b {
				t.Fatalf("NextAction(%s, %v) returned differing actions: %+v vs %+v", s, has, a, b)
			}
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("Valid(%s) = false, want true", s)
		}
		if s.Label() == "" {
			t.Errorf("Label(%s) is empty", s)
		}
	}
	if Status("shipped").Valid() {
		t.Error("Valid(shipped) = true, want false")
	}
	if len(Statuses) != 11 {
		t.Errorf("expected 11 lifecycle statuses, got %d", len(Statuses))
	}
}

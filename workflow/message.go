package workflow

import (
	"fmt"
	"net/url"
	"strings"
)

// StatusMessage builds the outbound client notification text for a status.
// The vehicle registration is woven in when present and omitted cleanly when
// empty. The message always names the client and the job card reference.
// Delivery is not this function's concern; the caller hands the text to a
// wa.me deep link the operator opens manually.
func StatusMessage(s Status, clientName, vehicleReg, jobCardNumber string) string {
	vehicle := "your vehicle"
	if strings.TrimSpace(vehicleReg) != "" {
		vehicle = fmt.Sprintf("your vehicle (%s)", strings.TrimSpace(vehicleReg))
	}

	switch s {
	case StatusReceived:
		return fmt.Sprintf("Hi %s, we have received %s at the workshop. Your job card reference is %s. We will be in touch once diagnosis begins.", clientName, vehicle, jobCardNumber)
	case StatusDiagnosing:
		return fmt.Sprintf("Hi %s, our technicians are now diagnosing %s (job card %s). We will send you the findings shortly.", clientName, vehicle, jobCardNumber)
	case StatusDiagnosed:
		return fmt.Sprintf("Hi %s, diagnosis of %s is complete (job card %s). We are preparing a quote for the recommended work.", clientName, vehicle, jobCardNumber)
	case StatusQuoted:
		return fmt.Sprintf("Hi %s, your quote for %s is ready (job card %s). Please review and let us know if we should proceed.", clientName, vehicle, jobCardNumber)
	case StatusApproved:
		return fmt.Sprintf("Hi %s, thank you for approving the work on %s (job card %s). We will schedule it right away.", clientName, vehicle, jobCardNumber)
	case StatusInProgress:
		return fmt.Sprintf("Hi %s, work on %s is now underway (job card %s).", clientName, vehicle, jobCardNumber)
	case StatusAwaitingParts:
		return fmt.Sprintf("Hi %s, we are waiting on parts for %s (job card %s). We will resume as soon as they arrive.", clientName, vehicle, jobCardNumber)
	case StatusQualityCheck:
		return fmt.Sprintf("Hi %s, %s is going through our final quality check (job card %s).", clientName, vehicle, jobCardNumber)
	case StatusCompleted:
		return fmt.Sprintf("Hi %s, great news! Work on %s is complete (job card %s). We will send your invoice shortly.", clientName, vehicle, jobCardNumber)
	case StatusInvoiced:
		return fmt.Sprintf("Hi %s, your invoice for %s is ready (job card %s). The vehicle is ready for collection once settled.", clientName, vehicle, jobCardNumber)
	case StatusCollected:
		return fmt.Sprintf("Hi %s, thank you for collecting %s (job card %s). We appreciate your business!", clientName, vehicle, jobCardNumber)
	}
	return fmt.Sprintf("Hi %s, here is an update on %s (job card %s).", clientName, vehicle, jobCardNumber)
}

// WhatsAppLink builds a wa.me deep link that pre-fills the given message for
// the phone number. Non-digit characters are stripped from the number (wa.me
// expects international format without +, spaces or dashes). Opening the link
// is a fire-and-forget handoff; there is no delivery contract.
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(message)
}

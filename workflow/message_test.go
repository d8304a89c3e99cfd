package workflow

import (
	"strings"
	"testing"
)

func TestStatusMessageContainsClientAndReference(t *testing.T) {
	for _, s := range Statuses {
		msg := StatusMessage(s, "Acme Motors", "CA 123-456", "JC-0042")
		if msg == "" {
			t.Fatalf("StatusMessage(%s) is empty", s)
		}
		if !strings.Contains(msg, "Acme Motors") {
			t.Errorf("StatusMessage(%s) missing client name: %q", s, msg)
		}
		if !strings.Contains(msg, "JC-0042") {
			t.Errorf("StatusMessage(%s) missing job card number: %q", s, msg)
		}
		if !strings.Contains(msg, "CA 123-456") {
			t.Errorf("StatusMessage(%s) missing vehicle reg: %q", s, msg)
		}
	}
}

func TestStatusMessageWithoutVehicleReg(t *testing.T) {
	for _, reg := range []string{"", "   "} {
		for _, s := range Statuses {
			msg := StatusMessage(s, "Jane Doe", reg, "JC-0001")
			if strings.Contains(msg, "()") || strings.Contains(msg, "( )") {
				t.Errorf("StatusMessage(%s) with empty reg leaves parenthesis artifact: %q", s, msg)
			}
			if !strings.Contains(msg, "Jane Doe") || !strings.Contains(msg, "JC-0001") {
				t.Errorf("StatusMessage(%s) dropped required fields: %q", s, msg)
			}
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+27 82 555-0199", "Hi Jane, your quote (JC-0001) is ready & waiting")
	if !strings.HasPrefix(link, "https://wa.me/27825550199?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}
	if strings.Contains(link, " ") {
		t.Errorf("link contains unescaped space: %q", link)
	}
	if !strings.Contains(link, "JC-0001") {
		t.Errorf("link lost the reference: %q", link)
	}
}

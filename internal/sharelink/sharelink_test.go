package sharelink_test

import (
	"strings"
	"testing"

	"github.com/alhambra-events/api/internal/sharelink"
)

func TestLinkRoundTrip(t *testing.T) {
	issuer := sharelink.NewIssuer("test-secret", "http://localhost:5173/")

	link, err := issuer.Link("ev-123")
	if err != nil {
		t.Fatalf("issue link: %v", err)
	}
	if !strings.HasPrefix(link, "http://localhost:5173/p/") {
		t.Fatalf("unexpected link shape: %q", link)
	}

	token := strings.TrimPrefix(link, "http://localhost:5173/p/")
	id, err := issuer.EventID(token)
	if err != nil {
		t.Fatalf("resolve token: %v", err)
	}
	if id != "ev-123" {
		t.Fatalf("got %q, want ev-123", id)
	}
}

func TestEventID_WrongSecret(t *testing.T) {
	issuer := sharelink.NewIssuer("secret-a", "http://localhost:5173")
	link, err := issuer.Link("ev-123")
	if err != nil {
		t.Fatalf("issue link: %v", err)
	}
	token := strings.TrimPrefix(link, "http://localhost:5173/p/")

	other := sharelink.NewIssuer("secret-b", "http://localhost:5173")
	if _, err := other.EventID(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestEventID_Garbage(t *testing.T) {
	issuer := sharelink.NewIssuer("test-secret", "http://localhost:5173")
	if _, err := issuer.EventID("not-a-token"); err == nil {
		t.Fatal("garbage token was accepted")
	}
}

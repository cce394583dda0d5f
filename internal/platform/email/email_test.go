package email

import (
	"context"
	"strings"
	"testing"

	"hris/internal/platform/config"
)

func TestNewReturnsNoopWhenDisabled(t *testing.T) {
	m := New(config.Config{EmailEnabled: false, SMTPHost: "smtp.example.com"})
	if _, ok := m.(noopMailer); !ok {
		t.Fatalf("expected noop mailer, got %T", m)
	}
	if err := m.Send(context.Background(), "a@b.c", "d@e.f", "s", "b"); err != nil {
		t.Fatalf("noop send failed: %v", err)
	}
}

func TestNewReturnsSMTPWhenConfigured(t *testing.T) {
	m := New(config.Config{EmailEnabled: true, SMTPHost: "smtp.example.com", SMTPPort: 25})
	if _, ok := m.(*smtpMailer); !ok {
		t.Fatalf("expected smtp mailer, got %T", m)
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	msg := string(buildMessage("hr@example.com", "ada@example.com", "Leave request approved", "Enjoy."))
	for _, want := range []string{"From: hr@example.com\r\n", "To: ada@example.com\r\n", "Subject: Leave request approved\r\n", "\r\n\r\nEnjoy."} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

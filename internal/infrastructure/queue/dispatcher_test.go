package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type captureMailer struct {
	sent chan string
	err  error
}

func (m *captureMailer) SendResetLink(_ context.Context, recipient, token string) error {
	m.sent <- recipient + ":" + token
	return m.err
}

func TestMailDispatcher_Delivers(t *testing.T) {
	mailer := &captureMailer{sent: make(chan string, 4)}
	d := NewMailDispatcher(2, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.SendResetLink("alice@example.com", "tok-1")
	d.SendResetLink("bob@example.com", "tok-2")

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case s := <-mailer.sent:
			got[s] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery, got %v", got)
		}
	}
	if !got["alice@example.com:tok-1"] || !got["bob@example.com:tok-2"] {
		t.Fatalf("unexpected deliveries: %v", got)
	}
}

func TestMailDispatcher_KeepsRunningAfterFailure(t *testing.T) {
	mailer := &captureMailer{sent: make(chan string, 4), err: errors.New("smtp down")}
	d := NewMailDispatcher(1, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.SendResetLink("alice@example.com", "tok-1")
	d.SendResetLink("bob@example.com", "tok-2")

	for i := 0; i < 2; i++ {
		select {
		case <-mailer.sent:
		case <-time.After(2 * time.Second):
			t.Fatalf("worker stopped after a failed delivery")
		}
	}
}

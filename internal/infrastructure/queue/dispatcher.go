package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fastadmin/blog-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

type resetMail struct {
	recipient string
	token     string
}

// MailDispatcher delivers password-reset mail off the request path. A fixed
// pool of workers drains a shared buffered channel; delivery order across
// recipients does not matter. A failed delivery is logged and dropped, the
// user can request another mail.
type MailDispatcher struct {
	jobs    chan resetMail
	workers int
	mailer  ports.ResetMailer
	log     zerolog.Logger
}

// NewMailDispatcher creates a MailDispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, mailer ports.ResetMailer, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &MailDispatcher{
		jobs:    make(chan resetMail, channelBuffer),
		workers: numWorkers,
		mailer:  mailer,
		log:     log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// SendResetLink queues a reset mail for background delivery. The call is
// non-blocking up to channelBuffer capacity.
func (d *MailDispatcher) SendResetLink(recipient, token string) {
	d.jobs <- resetMail{recipient: recipient, token: token}
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-d.jobs:
			if !ok {
				return
			}
			if err := d.mailer.SendResetLink(ctx, job.recipient, job.token); err != nil {
				d.log.Error().Err(err).
					Str("recipient", job.recipient).
					Int("worker_id", id).
					Msg("reset mail delivery failed")
			}
		}
	}
}

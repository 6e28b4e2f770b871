package ports

import "context"

// ResetNotifier hands a freshly issued reset token to the delivery
// side-channel. Fire-and-forget: implementations log failures and never
// propagate them into the auth flow.
type ResetNotifier interface {
	SendResetLink(recipient, token string)
}

// ResetMailer performs the actual synchronous delivery of one reset link.
// The background dispatcher consumes it on behalf of ResetNotifier.
type ResetMailer interface {
	SendResetLink(ctx context.Context, recipient, token string) error
}

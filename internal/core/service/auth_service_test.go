package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fastadmin/blog-api/internal/core/auth"
	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

type memUserRepo struct {
	seq     int64
	users   map[int64]*domain.User
	updates int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.seq++
	u.ID = r.seq
	r.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.users[u.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[u.ID] = u
	r.updates++
	return u, nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByResetToken(_ context.Context, token string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context, _, _ int) ([]domain.User, int64, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

type recordingNotifier struct {
	recipients []string
	tokens     []string
}

func (n *recordingNotifier) SendResetLink(recipient, token string) {
	n.recipients = append(n.recipients, recipient)
	n.tokens = append(n.tokens, token)
}

type stubThrottle struct {
	allowed bool
	err     error
}

func (t *stubThrottle) Allow(_ context.Context, _ string) (bool, error) {
	return t.allowed, t.err
}

func newTestAuthService(repo ports.UserRepository, notifier ports.ResetNotifier, throttle ResetThrottle) *AuthService {
	return NewAuthService(
		repo,
		auth.NewPasswordHasher(auth.MinHashCost, zerolog.Nop()),
		auth.DefaultPasswordPolicy(),
		auth.NewTokenCodec("test-secret", "blog-api", 30*time.Minute),
		auth.NewResetTokenStore(24*time.Hour),
		notifier,
		throttle,
		zerolog.Nop(),
	)
}

func seedUser(t *testing.T, svc *AuthService, repo *memUserRepo, active bool) *domain.User {
	t.Helper()
	hash, err := svc.hasher.Hash("Curr3nt-Pass!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u, err := repo.Create(context.Background(), &domain.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		IsActive:     active,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return u
}

func TestAuthService_Login(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)
	seedUser(t, svc, repo, true)

	token, user, err := svc.Login(context.Background(), "Alice@Example.com", "Curr3nt-Pass!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %q", user.Email)
	}

	resolved, err := svc.ResolveToken(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("token resolves to wrong user: %d", resolved.ID)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)
	seedUser(t, svc, repo, true)

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)

	// A missing account and a wrong password must look the same.
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginDisabledAccount(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)
	seedUser(t, svc, repo, false)

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "Curr3nt-Pass!"); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthService_Register(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Email:    "Bob@Example.com",
		Password: "Str0ng-Pass!",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.Email != "bob@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "Str0ng-Pass!" || user.PasswordHash == "" {
		t.Fatalf("plaintext not hashed")
	}
	if !svc.hasher.Verify("Str0ng-Pass!", user.PasswordHash) {
		t.Fatalf("stored hash does not verify")
	}
}

func TestAuthService_RegisterWeakPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "weak",
	})
	var weak *domain.WeakPasswordError
	if !errors.As(err, &weak) {
		t.Fatalf("expected WeakPasswordError, got %v", err)
	}
	if len(weak.Violations) == 0 {
		t.Fatalf("expected violations to be reported")
	}
	if len(repo.users) != 0 {
		t.Fatalf("no account may be created for a rejected password")
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)
	seedUser(t, svc, repo, true)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "fresh@example.com",
		Password: "Str0ng-Pass!",
	})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Username: "fresh",
		Email:    "ALICE@example.com",
		Password: "Str0ng-Pass!",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &recordingNotifier{}
	svc := newTestAuthService(repo, notifier, nil)
	user := seedUser(t, svc, repo, true)

	if err := svc.RequestPasswordReset(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if len(notifier.tokens) != 1 {
		t.Fatalf("expected one mail, got %d", len(notifier.tokens))
	}
	if notifier.recipients[0] != "alice@example.com" {
		t.Fatalf("mail sent to %q", notifier.recipients[0])
	}

	stored := repo.users[user.ID]
	if stored.ResetToken == nil || *stored.ResetToken != notifier.tokens[0] {
		t.Fatalf("mailed token not persisted on the account")
	}
	if stored.ResetTokenExpires == nil {
		t.Fatalf("expiry not persisted")
	}
}

func TestAuthService_RequestPasswordResetUnknownEmail(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &recordingNotifier{}
	svc := newTestAuthService(repo, notifier, nil)

	// Unknown addresses are silently acknowledged and nothing is sent.
	if err := svc.RequestPasswordReset(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if len(notifier.tokens) != 0 {
		t.Fatalf("no mail may be sent for an unknown address")
	}
}

func TestAuthService_RequestPasswordResetThrottled(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &recordingNotifier{}
	svc := newTestAuthService(repo, notifier, &stubThrottle{allowed: false})
	seedUser(t, svc, repo, true)

	if err := svc.RequestPasswordReset(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if len(notifier.tokens) != 0 {
		t.Fatalf("throttled request must not send mail")
	}
}

func TestAuthService_RequestPasswordResetThrottleFailsOpen(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &recordingNotifier{}
	svc := newTestAuthService(repo, notifier, &stubThrottle{err: errors.New("redis down")})
	seedUser(t, svc, repo, true)

	if err := svc.RequestPasswordReset(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if len(notifier.tokens) != 1 {
		t.Fatalf("throttle outage must not block recovery mail")
	}
}

func TestAuthService_ConfirmPasswordReset(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &recordingNotifier{}
	svc := newTestAuthService(repo, notifier, nil)
	user := seedUser(t, svc, repo, true)

	if err := svc.RequestPasswordReset(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	token := notifier.tokens[0]

	if err := svc.ConfirmPasswordReset(context.Background(), token, "N3w-Str0ng-Pass!"); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	stored := repo.users[user.ID]
	if stored.ResetToken != nil || stored.ResetTokenExpires != nil {
		t.Fatalf("token pair must be cleared on redemption")
	}
	if !svc.hasher.Verify("N3w-Str0ng-Pass!", stored.PasswordHash) {
		t.Fatalf("new password does not verify")
	}

	// Single use: the same token cannot be redeemed twice.
	if err := svc.ConfirmPasswordReset(context.Background(), token, "An0ther-Pass!"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken on reuse, got %v", err)
	}
}

func TestAuthService_ConfirmPasswordResetWeakReplacement(t *testing.T) {
	repo := newMemUserRepo()
	notifier := &recordingNotifier{}
	svc := newTestAuthService(repo, notifier, nil)
	user := seedUser(t, svc, repo, true)

	if err := svc.RequestPasswordReset(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}

	err := svc.ConfirmPasswordReset(context.Background(), notifier.tokens[0], "weak")
	var weak *domain.WeakPasswordError
	if !errors.As(err, &weak) {
		t.Fatalf("expected WeakPasswordError, got %v", err)
	}

	// A rejected replacement leaves the token live for another attempt.
	stored := repo.users[user.ID]
	if stored.ResetToken == nil {
		t.Fatalf("token must survive a rejected replacement password")
	}
	if !svc.hasher.Verify("Curr3nt-Pass!", stored.PasswordHash) {
		t.Fatalf("old password must remain in place")
	}
}

func TestAuthService_ConfirmPasswordResetInvalidToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)

	if err := svc.ConfirmPasswordReset(context.Background(), "bogus", "N3w-Str0ng-Pass!"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)
	user := seedUser(t, svc, repo, true)

	if err := svc.ChangePassword(context.Background(), user, "Curr3nt-Pass!", "N3w-Str0ng-Pass!"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if !svc.hasher.Verify("N3w-Str0ng-Pass!", repo.users[user.ID].PasswordHash) {
		t.Fatalf("new password does not verify")
	}
}

func TestAuthService_ChangePasswordWrongCurrent(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)
	user := seedUser(t, svc, repo, true)

	err := svc.ChangePassword(context.Background(), user, "not-the-password", "N3w-Str0ng-Pass!")
	if !errors.Is(err, domain.ErrWrongCurrentPassword) {
		t.Fatalf("expected ErrWrongCurrentPassword, got %v", err)
	}
	if !svc.hasher.Verify("Curr3nt-Pass!", repo.users[user.ID].PasswordHash) {
		t.Fatalf("password must not change")
	}
}

func TestAuthService_ResolveTokenInvalid(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.ResolveToken(context.Background(), tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestAuthService_ResolveTokenDeletedUser(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo, &recordingNotifier{}, nil)
	user := seedUser(t, svc, repo, true)

	token, _, err := svc.Login(context.Background(), "alice@example.com", "Curr3nt-Pass!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// A well-signed token over a vanished account resolves to nothing.
	if _, err := svc.ResolveToken(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

// Package admin decides who may operate the content/product editing overlay
// and guards the operator login against brute force.
package admin

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-faster/errors"
)

// ErrUnauthorized is returned when credentials are rejected by the auth
// backend or the account is not an operator.
var ErrUnauthorized = errors.New("unauthorized")

// ErrLockedOut is returned while the login throttle lockout is active.
var ErrLockedOut = errors.New("too many attempts")

// Operator identifies an authenticated back-office user.
type Operator struct {
	ID    string
	Email string
}

// Authenticator verifies operator credentials against the auth backend.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (Operator, error)
}

// Directory answers membership questions against the admin_users relation.
type Directory interface {
	IsMember(ctx context.Context, userID string) (bool, error)
}

// Policy grants operator privileges to accounts on the email allowlist or
// present in the directory. The two checks are an explicit union; either
// one passing is sufficient.
type Policy struct {
	allowlist map[string]struct{}
	dir       Directory
}

// NewPolicy builds a Policy from a static email allowlist and a directory.
// dir may be nil when no backing store is configured.
func NewPolicy(emails []string, dir Directory) *Policy {
	allow := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allow[e] = struct{}{}
		}
	}
	return &Policy{allowlist: allow, dir: dir}
}

// IsAdmin reports whether op is a privileged operator. A directory error is
// returned so the caller can log it; the result is false in that case.
func (p *Policy) IsAdmin(ctx context.Context, op Operator) (bool, error) {
	if _, ok := p.allowlist[strings.ToLower(op.Email)]; ok {
		return true, nil
	}
	if p.dir == nil {
		return false, nil
	}

	member, err := p.dir.IsMember(ctx, op.ID)
	if err != nil {
		return false, errors.Wrap(err, "directory lookup")
	}
	return member, nil
}

const (
	maxLoginAttempts = 5
	loginLockout     = time.Minute
)

// LoginThrottle counts failed login attempts per key (the email) and locks
// the key out for a minute once the limit is reached.
type LoginThrottle struct {
	mu      sync.Mutex
	entries map[string]*attemptEntry
	now     func() time.Time
}

type attemptEntry struct {
	fails int
	last  time.Time
}

// NewLoginThrottle returns an empty throttle.
func NewLoginThrottle() *LoginThrottle {
	return &LoginThrottle{
		entries: make(map[string]*attemptEntry),
		now:     time.Now,
	}
}

// Allow reports whether a login attempt for key may proceed. Expired
// lockouts reset the counter.
func (t *LoginThrottle) Allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		return true
	}
	if e.fails < maxLoginAttempts {
		return true
	}
	if t.now().Sub(e.last) >= loginLockout {
		delete(t.entries, key)
		return true
	}
	return false
}

// Fail records a failed attempt for key.
func (t *LoginThrottle) Fail(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		e = &attemptEntry{}
		t.entries[key] = e
	}
	e.fails++
	e.last = t.now()
}

// Reset clears the counter for key after a successful login.
func (t *LoginThrottle) Reset(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, key)
}

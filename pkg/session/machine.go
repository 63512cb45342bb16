// Package session implements the client-side authentication state machine:
// anonymous, in-flight, authenticated, and errored states backed by a durable
// key-value Storage so a session survives restarts. The stored copy is a
// cache for convenience only; the server never trusts it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/katyregal/salon-api/pkg/salonclient"
)

// State is the lifecycle phase of the session machine.
type State string

const (
	// StateIdle means no session and no request in flight.
	StateIdle State = "idle"
	// StateLoading means a login or registration request is in flight.
	StateLoading State = "loading"
	// StateSucceeded means the machine holds a token and a user.
	StateSucceeded State = "succeeded"
	// StateFailed means the last action errored and no valid session exists.
	StateFailed State = "failed"
)

// Storage keys. Absence of either means "no session".
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Audit tags recorded on every transition.
const (
	TagLoginPending      = "login_pending"
	TagLoginFulfilled    = "login_fulfilled"
	TagLoginRejected     = "login_rejected"
	TagRegisterPending   = "register_pending"
	TagRegisterFulfilled = "register_fulfilled"
	TagRegisterRejected  = "register_rejected"
	TagRestoreFulfilled  = "restore_fulfilled"
	TagRestoreEmpty      = "restore_empty"
	TagRestoreCorrupt    = "restore_corrupt"
	TagLogout            = "logout"
)

// ErrNoToken is returned when the server reports success but the payload
// carries no token.
var ErrNoToken = errors.New("no authentication token received")

const genericFailure = "something went wrong"

// AuthAPI is the slice of the salon client the machine depends on.
// *salonclient.Client satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*salonclient.AuthResult, error)
	Register(ctx context.Context, input salonclient.RegisterInput) (*salonclient.AuthResult, error)
}

// AuditEntry records one transition. The trail exists for observability; no
// transition logic reads it.
type AuditEntry struct {
	Tag string
	At  time.Time
}

// Snapshot is a point-in-time view of the machine, safe to hold after the
// machine moves on.
type Snapshot struct {
	State State
	Token string
	User  *salonclient.User
	Err   string
}

// IsAuthenticated reports whether the snapshot represents a live session.
func (s Snapshot) IsAuthenticated() bool {
	return s.State == StateSucceeded
}

// Machine coordinates authentication requests, in-memory session state, and
// the durable storage copy. Concurrent logins are not mutually excluded: the
// last request to resolve wins and overwrites both state and storage.
type Machine struct {
	mu     sync.Mutex
	state  State
	token  string
	user   *salonclient.User
	errMsg string
	audit  []AuditEntry

	api   AuthAPI
	store Storage
	log   zerolog.Logger
	now   func() time.Time
}

// New creates a Machine in StateIdle.
func New(api AuthAPI, store Storage, log zerolog.Logger) *Machine {
	return &Machine{
		state: StateIdle,
		api:   api,
		store: store,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Login authenticates with email and password. On success the token and a
// sanitized user are persisted to storage, overwriting any prior session.
func (m *Machine) Login(ctx context.Context, email, password string) error {
	m.begin(TagLoginPending)
	result, err := m.api.Login(ctx, email, password)
	return m.settle(TagLoginFulfilled, TagLoginRejected, result, err)
}

// Register creates an account and, like Login, leaves the machine
// authenticated on success.
func (m *Machine) Register(ctx context.Context, input salonclient.RegisterInput) error {
	m.begin(TagRegisterPending)
	result, err := m.api.Register(ctx, input)
	return m.settle(TagRegisterFulfilled, TagRegisterRejected, result, err)
}

// Restore rebuilds the session from storage without a network call. Missing
// entries leave the machine idle; a corrupt user blob is treated as
// non-fatal corruption — both entries are cleared and the machine is idle.
func (m *Machine) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, okToken, errToken := m.store.Get(KeyToken)
	rawUser, okUser, errUser := m.store.Get(KeyUser)
	if errToken != nil || errUser != nil || !okToken || !okUser || token == "" {
		m.clearStorage()
		m.reset(StateIdle, TagRestoreEmpty)
		return
	}

	var user salonclient.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		m.log.Warn().Err(err).Msg("stored user is corrupt, clearing session")
		m.clearStorage()
		m.reset(StateIdle, TagRestoreCorrupt)
		return
	}

	m.state = StateSucceeded
	m.token = token
	m.user = &user
	m.errMsg = ""
	m.transition(TagRestoreFulfilled)
}

// Logout clears both storage entries and resets the machine to anonymous,
// regardless of prior state. The server-side token stays valid until expiry.
func (m *Machine) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearStorage()
	m.reset(StateIdle, TagLogout)
}

// Snapshot returns the current state for selectors/UI.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{State: m.state, Token: m.token, Err: m.errMsg}
	if m.user != nil {
		user := *m.user
		snap.User = &user
	}
	return snap
}

// Audit returns a copy of the transition trail.
func (m *Machine) Audit() []AuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]AuditEntry(nil), m.audit...)
}

func (m *Machine) begin(tag string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateLoading
	m.errMsg = ""
	m.transition(tag)
}

// settle applies the outcome of a login/register call. The network call runs
// outside the lock, so when two attempts race the later resolution wins.
func (m *Machine) settle(okTag, failTag string, result *salonclient.AuthResult, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.state = StateFailed
		m.token = ""
		m.user = nil
		m.errMsg = failureMessage(err)
		m.transition(failTag)
		return err
	}
	if result == nil || result.Token == "" {
		m.state = StateFailed
		m.token = ""
		m.user = nil
		m.errMsg = ErrNoToken.Error()
		m.transition(failTag)
		return ErrNoToken
	}

	m.persist(result)

	user := result.User
	m.state = StateSucceeded
	m.token = result.Token
	m.user = &user
	m.errMsg = ""
	m.transition(okTag)
	return nil
}

// persist overwrites the durable copy. The user is stored sanitized — the
// User type carries no token field. Storage failures degrade to an in-memory
// session rather than failing the login.
func (m *Machine) persist(result *salonclient.AuthResult) {
	m.clearStorage()

	if err := m.store.Set(KeyToken, result.Token); err != nil {
		m.log.Warn().Err(err).Msg("failed to persist token")
		return
	}
	raw, err := json.Marshal(result.User)
	if err != nil {
		m.log.Warn().Err(err).Msg("failed to encode user")
		return
	}
	if err := m.store.Set(KeyUser, string(raw)); err != nil {
		m.log.Warn().Err(err).Msg("failed to persist user")
	}
}

func (m *Machine) clearStorage() {
	if err := m.store.Delete(KeyToken); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear stored token")
	}
	if err := m.store.Delete(KeyUser); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear stored user")
	}
}

func (m *Machine) reset(state State, tag string) {
	m.state = state
	m.token = ""
	m.user = nil
	m.errMsg = ""
	m.transition(tag)
}

func (m *Machine) transition(tag string) {
	m.audit = append(m.audit, AuditEntry{Tag: tag, At: m.now()})
	m.log.Debug().Str("tag", tag).Str("state", string(m.state)).Msg("session transition")
}

// failureMessage surfaces the server's message verbatim when present, else a
// generic fallback.
func failureMessage(err error) string {
	var apiErr *salonclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericFailure
}

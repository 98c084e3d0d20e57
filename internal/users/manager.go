package users

import (
	"errors"

	"trialbench/internal/telemetry"
)

// ErrPolicyRejected is returned when a password fails the active policy.
var ErrPolicyRejected = errors.New("password rejected by policy")

// Manager registers users through the active policy and logs them in
// through the active authenticator. Both can be swapped at any time.
type Manager struct {
	store  *Store
	policy PasswordPolicy
	auth   Authenticator
}

func NewManager(store *Store, policy PasswordPolicy, auth Authenticator) *Manager {
	return &Manager{store: store, policy: policy, auth: auth}
}

func (m *Manager) Policy() PasswordPolicy { return m.policy }

func (m *Manager) SetPolicy(p PasswordPolicy) { m.policy = p }

func (m *Manager) SetAuthenticator(a Authenticator) { m.auth = a }

// Register validates the password against the active policy, then stores u.
func (m *Manager) Register(u User) error {
	if !m.policy.Valid(u.Password) {
		telemetry.LogDebug("registration rejected", "username", u.Username, "policy", m.policy.Name())
		return ErrPolicyRejected
	}
	if err := m.store.CreateUser(u); err != nil {
		telemetry.LogDebug("registration rejected", "username", u.Username, "error", err)
		return err
	}
	telemetry.LogDebug("user registered", "username", u.Username)
	return nil
}

// Login delegates to the active authenticator.
func (m *Manager) Login(identifier, password string) bool {
	ok := m.auth.Authenticate(identifier, password)
	telemetry.LogDebug("login attempt", "identifier", identifier, "ok", ok)
	return ok
}

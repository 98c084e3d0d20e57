package users

// Authenticator checks a login identifier and password.
type Authenticator interface {
	Authenticate(identifier, password string) bool
}

// UsernameAuth authenticates with the username as identifier.
type UsernameAuth struct {
	store *Store
}

func NewUsernameAuth(store *Store) *UsernameAuth {
	return &UsernameAuth{store: store}
}

func (a *UsernameAuth) Authenticate(username, password string) bool {
	u, ok := a.store.ByUsername(username)
	return ok && u.Password == password
}

// EmailLoginSystem is the legacy login service. It predates Authenticator
// and exposes its own method name.
type EmailLoginSystem struct {
	store *Store
}

func NewEmailLoginSystem(store *Store) *EmailLoginSystem {
	return &EmailLoginSystem{store: store}
}

func (e *EmailLoginSystem) LoginWithEmail(email, pwd string) bool {
	u, ok := e.store.ByEmail(email)
	return ok && u.Password == pwd
}

// EmailAuthAdapter exposes an EmailLoginSystem as an Authenticator.
type EmailAuthAdapter struct {
	legacy *EmailLoginSystem
}

func NewEmailAuthAdapter(legacy *EmailLoginSystem) *EmailAuthAdapter {
	return &EmailAuthAdapter{legacy: legacy}
}

func (a *EmailAuthAdapter) Authenticate(email, password string) bool {
	return a.legacy.LoginWithEmail(email, password)
}

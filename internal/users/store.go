package users

import "errors"

// ErrUserExists is returned when the username or the email is already taken.
var ErrUserExists = errors.New("username or email already registered")

// User is a registered account.
type User struct {
	Username string
	Email    string
	Password string
}

// Store is the in-memory user database. Build one with NewStore and share the
// pointer; a second Store is a separate, empty database.
type Store struct {
	users   map[string]User
	byEmail map[string]string
	order   []string
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]User),
		byEmail: make(map[string]string),
	}
}

// CreateUser adds u unless its username or email is already present.
func (s *Store) CreateUser(u User) error {
	if _, ok := s.users[u.Username]; ok {
		return ErrUserExists
	}
	if _, ok := s.byEmail[u.Email]; ok {
		return ErrUserExists
	}
	s.users[u.Username] = u
	s.byEmail[u.Email] = u.Username
	s.order = append(s.order, u.Username)
	return nil
}

func (s *Store) ByUsername(username string) (User, bool) {
	u, ok := s.users[username]
	return u, ok
}

func (s *Store) ByEmail(email string) (User, bool) {
	username, ok := s.byEmail[email]
	if !ok {
		return User{}, false
	}
	return s.ByUsername(username)
}

// List returns every user in registration order.
func (s *Store) List() []User {
	out := make([]User, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.users[name])
	}
	return out
}

// Len returns the number of registered users.
func (s *Store) Len() int {
	return len(s.order)
}

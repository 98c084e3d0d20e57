// Package users is a toy registration and login flow built from three
// classic patterns:
//
//   - a single shared user Store, created once and handed to every consumer
//     instead of living in a package global;
//   - interchangeable PasswordPolicy strategies (weak, medium, strong);
//   - EmailAuthAdapter, which puts a legacy email login system behind the
//     common Authenticator interface.
//
// Passwords are kept in plain text and nothing is persisted. The store is not
// safe for concurrent use.
package users

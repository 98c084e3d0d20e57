package users

// Explanation is the markdown summary shown by `patterns --explain`.
const Explanation = `# Patterns in the user demo

## Singleton
One ` + "`Store`" + ` is built at startup and the same pointer is handed to the
manager, both authenticators and the listing code. There is no package
global: whoever builds the store decides how many exist.

## Strategy
` + "`PasswordPolicy`" + ` has three interchangeable implementations:

| Policy | Rule |
|--------|------|
| Weak   | at least 4 characters |
| Medium | at least 6 characters, a letter and a digit |
| Strong | at least 8 characters, lower and upper case, a digit and a symbol |

The manager validates every registration through whichever policy is active.

## Adapter
The legacy ` + "`EmailLoginSystem`" + ` only offers ` + "`LoginWithEmail`" + `.
` + "`EmailAuthAdapter`" + ` wraps it so the manager can switch from username
login to email login through the same ` + "`Authenticator`" + ` interface.
`

package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown login and a wrong
	// password. The two causes are deliberately indistinguishable so the
	// response never discloses whether an account exists.
	ErrInvalidCredentials = errors.New("could not validate credentials")

	// ErrInvalidToken covers bad signatures, malformed payloads and
	// expired tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNotFound means the token verified but its subject no longer
	// resolves to a user.
	ErrUserNotFound = errors.New("user not found")
)

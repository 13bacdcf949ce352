// Package auth defines the credential check gating the staff dashboard.
// Handlers depend on the Authenticator interface so a real credential
// store can be swapped in without touching them.
package auth

import "crypto/subtle"

// Authenticator validates staff credentials.
type Authenticator interface {
	Authenticate(username, password string) bool
}

// StaticAuthenticator checks against a single configured credential pair.
type StaticAuthenticator struct {
	username string
	password string
}

// NewStaticAuthenticator creates an authenticator for one credential pair.
func NewStaticAuthenticator(username, password string) *StaticAuthenticator {
	return &StaticAuthenticator{username: username, password: password}
}

// Authenticate compares credentials in constant time.
func (a *StaticAuthenticator) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

package transport

import (
	"net/http"
)

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request, secret string)

	// Method names the scheme for error reports.
	Method() string
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {
	// No authentication applied
}

// Method implements the Authenticator interface for NoAuth.
func (a *NoAuth) Method() string { return "none" }

// BasicAuth implements HTTP basic authentication with an API token as password.
type BasicAuth struct {
	Username string
}

// Apply implements the Authenticator interface for BasicAuth.
func (a *BasicAuth) Apply(req *http.Request, secret string) {
	req.SetBasicAuth(a.Username, secret)
}

// Method implements the Authenticator interface for BasicAuth.
func (a *BasicAuth) Method() string { return "basic" }

// BearerAuth implements Bearer token authentication (personal access tokens).
type BearerAuth struct{}

// Apply implements the Authenticator interface for BearerAuth.
func (a *BearerAuth) Apply(req *http.Request, secret string) {
	req.Header.Set("Authorization", "Bearer "+secret)
}

// Method implements the Authenticator interface for BearerAuth.
func (a *BearerAuth) Method() string { return "bearer" }

// AuthenticatorFor picks basic auth when a username is present and bearer
// auth otherwise. An empty token means no authentication.
func AuthenticatorFor(username, token string) Authenticator {
	switch {
	case token == "":
		return &NoAuth{}
	case username != "":
		return &BasicAuth{Username: username}
	default:
		return &BearerAuth{}
	}
}

package httpecho

import (
	"net/http"

	"github.com/always-cache/httpecho/rfc6750"
	"github.com/always-cache/httpecho/rfc7617"
)

const basicRealm = "Fake Realm"

// AuthProbeResult reports whether a request carried the expected credentials.
// Subject is the user name for Basic and the token for Bearer.
type AuthProbeResult struct {
	Authenticated bool
	Subject       string
}

// ProbeBasic checks the Authorization field against the user and password.
// The user is reported whether or not the credentials match.
func ProbeBasic(authorization, user, password string) AuthProbeResult {
	return AuthProbeResult{
		Authenticated: rfc7617.Verify(authorization, user, password),
		Subject:       user,
	}
}

// ProbeBearer extracts the token of a Bearer Authorization field.
func ProbeBearer(authorization string) AuthProbeResult {
	token, ok := rfc6750.Token(authorization)
	return AuthProbeResult{Authenticated: ok, Subject: token}
}

type basicAuthBody struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user"`
}

type bearerBody struct {
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token"`
}

func (s *Server) basicAuth(w http.ResponseWriter, r *http.Request) error {
	user, err := pathParam(r, "user")
	if err != nil {
		return err
	}
	password, err := pathParam(r, "passwd")
	if err != nil {
		return err
	}
	res := ProbeBasic(r.Header.Get("Authorization"), user, password)
	status := http.StatusOK
	if !res.Authenticated {
		w.Header().Set("WWW-Authenticate", rfc7617.Challenge(basicRealm))
		status = http.StatusUnauthorized
	}
	getLogger(r).Trace().Str("user", user).Bool("authenticated", res.Authenticated).Msg("Basic auth probe")
	writeJSON(w, r, status, basicAuthBody{Authenticated: res.Authenticated, User: res.Subject})
	return nil
}

func (s *Server) bearer(w http.ResponseWriter, r *http.Request) error {
	res := ProbeBearer(r.Header.Get("Authorization"))
	status := http.StatusOK
	if !res.Authenticated {
		w.Header().Set("WWW-Authenticate", rfc6750.Challenge)
		status = http.StatusUnauthorized
	}
	writeJSON(w, r, status, bearerBody{Authenticated: res.Authenticated, Token: res.Subject})
	return nil
}

package httpecho

import (
	"net/http"

	querypairs "github.com/always-cache/httpecho/pkg/query-pairs"
	"github.com/always-cache/httpecho/rfc6265"
)

// CookieUpdate is the result of a cookie operation: the jar reported back to
// the client and the Set-Cookie fields that bring the client's jar in line.
type CookieUpdate struct {
	Jar        map[string]string
	SetCookies []rfc6265.SetCookie
}

type cookiesBody struct {
	Cookies map[string]string `json:"cookies"`
}

// SetCookies adds or overwrites one cookie per query pair, in query order.
func SetCookies(inbound []rfc6265.Pair, pairs querypairs.Pairs) (CookieUpdate, error) {
	u := CookieUpdate{Jar: rfc6265.Jar(inbound)}
	for _, p := range pairs {
		if p.Key == "" {
			return CookieUpdate{}, ClientInputError{Err: rfc6265.ErrEmptyName}
		}
		u.Jar[p.Key] = p.Value
		u.SetCookies = append(u.SetCookies, rfc6265.NewSetCookie(p.Key, p.Value))
	}
	return u, nil
}

// SetCookie adds or overwrites a single cookie.
// The inbound cookies are sent back first, so that the new cookie is the last
// field for its name and wins in the client's jar.
func SetCookie(inbound []rfc6265.Pair, name, value string) (CookieUpdate, error) {
	if name == "" {
		return CookieUpdate{}, ClientInputError{Err: rfc6265.ErrEmptyName}
	}
	u := CookieUpdate{Jar: rfc6265.Jar(inbound)}
	for _, p := range inbound {
		u.SetCookies = append(u.SetCookies, rfc6265.NewSetCookie(p.Name, p.Value))
	}
	u.Jar[name] = value
	u.SetCookies = append(u.SetCookies, rfc6265.NewSetCookie(name, value))
	return u, nil
}

// DeleteCookies removes every cookie named in the query.
// A removal cookie is sent for every name, whether the client had it or not.
func DeleteCookies(inbound []rfc6265.Pair, pairs querypairs.Pairs) (CookieUpdate, error) {
	u := CookieUpdate{Jar: rfc6265.Jar(inbound)}
	for _, p := range pairs {
		if p.Key == "" {
			return CookieUpdate{}, ClientInputError{Err: rfc6265.ErrEmptyName}
		}
		delete(u.Jar, p.Key)
		u.SetCookies = append(u.SetCookies, rfc6265.RemovalCookie(p.Key, p.Value))
	}
	return u, nil
}

func writeCookieUpdate(w http.ResponseWriter, r *http.Request, u CookieUpdate) {
	for _, c := range u.SetCookies {
		w.Header().Add("Set-Cookie", c.String())
	}
	getLogger(r).Trace().Int("setCookies", len(u.SetCookies)).Msg("Updating cookies")
	writeJSON(w, r, http.StatusOK, cookiesBody{Cookies: u.Jar})
}

func (s *Server) getCookies(w http.ResponseWriter, r *http.Request) error {
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	inbound, err := view.Cookies()
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, cookiesBody{Cookies: rfc6265.Jar(inbound)})
	return nil
}

func (s *Server) setCookies(w http.ResponseWriter, r *http.Request) error {
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	inbound, err := view.Cookies()
	if err != nil {
		return err
	}
	pairs, err := view.Query()
	if err != nil {
		return err
	}
	u, err := SetCookies(inbound, pairs)
	if err != nil {
		return err
	}
	writeCookieUpdate(w, r, u)
	return nil
}

func (s *Server) setCookie(w http.ResponseWriter, r *http.Request) error {
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	inbound, err := view.Cookies()
	if err != nil {
		return err
	}
	name, err := pathParam(r, "name")
	if err != nil {
		return err
	}
	value, err := pathParam(r, "value")
	if err != nil {
		return err
	}
	u, err := SetCookie(inbound, name, value)
	if err != nil {
		return err
	}
	writeCookieUpdate(w, r, u)
	return nil
}

func (s *Server) deleteCookies(w http.ResponseWriter, r *http.Request) error {
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	inbound, err := view.Cookies()
	if err != nil {
		return err
	}
	pairs, err := view.Query()
	if err != nil {
		return err
	}
	u, err := DeleteCookies(inbound, pairs)
	if err != nil {
		return err
	}
	writeCookieUpdate(w, r, u)
	return nil
}

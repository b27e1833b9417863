package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/goji/httpauth"
	"github.com/gorilla/sessions"
	"github.com/msteinert/pam"
)

// AuthFunc checks one username and password pair.
type AuthFunc func(user, pass string) bool

// Auth protects the visualiser when it is exposed beyond localhost. The
// first request goes through basic auth; success is recorded in the same
// cookie session that holds the UI preferences, so a browser logs in once
// per session.
type Auth struct {
	store sessions.Store
	opts  httpauth.AuthOptions
}

func NewAuth(t *Templates, realm string, check AuthFunc) *Auth {
	a := &Auth{store: t.store}
	a.opts = httpauth.AuthOptions{
		Realm: realm,
		AuthFunc: func(user, pass string, r *http.Request) bool {
			return check(user, pass)
		},
	}
	return a
}

func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := a.store.Get(r, sessionName)
		if user, ok := sess.Values["user"].(string); ok && user != "" {
			next.ServeHTTP(w, r)
			return
		}
		httpauth.BasicAuth(a.opts)(a.remember(next)).ServeHTTP(w, r)
	})
}

// remember records the authenticated user in the session once basic auth
// has passed.
func (a *Auth) remember(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _, _ := r.BasicAuth()
		sess, _ := a.store.Get(r, sessionName)
		sess.Values["user"] = user
		if err := sess.Save(r, w); err != nil {
			log.Println("error saving session:", err)
		}
		h.ServeHTTP(w, r)
	})
}

// PamAuth verifies credentials against the named pam service.
func PamAuth(service string) AuthFunc {
	return func(user, pass string) bool {
		t, err := pam.StartFunc(service, user, func(s pam.Style, msg string) (string, error) {
			switch s {
			case pam.PromptEchoOn:
				return user, nil
			case pam.PromptEchoOff:
				return pass, nil
			default:
				return "", errors.New("unexpected style")
			}
		})
		if err != nil {
			log.Println("pam auth error:", err)
			return false
		}
		ok := t.Authenticate(0) == nil
		log.Println("auth", user, ok)
		return ok
	}
}

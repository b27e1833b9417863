package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
)

func TestAuthMiddleware(t *testing.T) {
	tmpl := &Templates{store: sessions.NewCookieStore([]byte("test-key"))}
	var calls int
	auth := NewAuth(tmpl, "test", func(user, pass string) bool {
		calls++
		return user == "alice" && pass == "squeamish"
	})
	h := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	// no credentials
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/view", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no credentials: status %d, want 401", w.Code)
	}

	// wrong password
	r := httptest.NewRequest("GET", "/view", nil)
	r.SetBasicAuth("alice", "wrong")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad credentials: status %d, want 401", w.Code)
	}

	// valid login passes through and sets the session cookie
	r = httptest.NewRequest("GET", "/view", nil)
	r.SetBasicAuth("alice", "squeamish")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("good credentials: status %d, want 200", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie set after login")
	}

	// the session is remembered, no further auth checks
	before := calls
	r = httptest.NewRequest("GET", "/view", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("session cookie: status %d, want 200", w.Code)
	}
	if calls != before {
		t.Errorf("auth func ran %d more times for a remembered session", calls-before)
	}
}

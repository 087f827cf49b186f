package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSessionCookieRoundTrip(t *testing.T) {
	ConfigureSessions("test-key", false)

	var first *SessionData
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = GetSession(r)
		first.Name = "Ana"
		first.MarkDirty()
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if first == nil || first.ID == "" {
		t.Fatal("no session initialized on first request")
	}
	cookies := rec.Result().Cookies()
	var sessCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == "QW_SESSION" {
			sessCookie = c
		}
	}
	if sessCookie == nil {
		t.Fatal("session cookie not written")
	}

	var second *SessionData
	h2 := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		second = GetSession(r)
		_, _ = w.Write([]byte("ok"))
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessCookie)
	h2.ServeHTTP(httptest.NewRecorder(), req)
	if second.ID != first.ID || second.Name != "Ana" {
		t.Fatalf("session did not round-trip: %+v", second)
	}
}

func TestTamperedCookieReadsAsEmpty(t *testing.T) {
	ConfigureSessions("test-key", false)

	var sd *SessionData
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sd = GetSession(r)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	var sessCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "QW_SESSION" {
			sessCookie = c
		}
	}
	originalID := sd.ID

	parts := strings.SplitN(sessCookie.Value, ".", 2)
	sessCookie.Value = parts[0] + "." + "AAAA"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessCookie)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if sd.ID == originalID {
		t.Fatal("tampered cookie kept the old session")
	}
	if sd.LoggedIn || sd.Name != "" {
		t.Fatalf("tampered cookie yielded non-empty session: %+v", sd)
	}
}

func TestSignInAndResetRotateID(t *testing.T) {
	ConfigureSessions("test-key", false)
	sd := &SessionData{ID: "before", CSRFToken: "tok"}
	sd.SignIn(42, "Ana", "ana@example.com", "token-value")
	if !sd.LoggedIn || sd.UserID != 42 || sd.ID == "before" || sd.CSRFToken == "tok" {
		t.Fatalf("sign-in did not rotate identity: %+v", sd)
	}

	loggedInID := sd.ID
	sd.Reset()
	if sd.LoggedIn || sd.Token != "" || sd.UserID != 0 || sd.Name != "" {
		t.Fatalf("reset left identity behind: %+v", sd)
	}
	if sd.ID == loggedInID {
		t.Fatal("reset kept the session id")
	}
}

func TestCSRFAcceptsHeaderOrFormField(t *testing.T) {
	ConfigureSessions("test-key", false)
	h := Session(CSRF(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})))

	// bootstrap cookies
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()
	var token string
	for _, c := range cookies {
		if c.Name == "qw_csrf" {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("no CSRF cookie issued")
	}

	post := func(mutate func(*http.Request)) int {
		body := strings.NewReader("_csrf=" + token)
		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		for _, c := range cookies {
			req.AddCookie(c)
		}
		if mutate != nil {
			mutate(req)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post(nil); code != http.StatusOK {
		t.Fatalf("form-field token rejected: %d", code)
	}
	headerOnly := func(req *http.Request) {
		req.Body = http.NoBody
		req.Header.Set("X-CSRF-Token", token)
	}
	if code := post(headerOnly); code != http.StatusOK {
		t.Fatalf("header token rejected: %d", code)
	}
	wrong := func(req *http.Request) {
		req.Body = http.NoBody
		req.Header.Set("X-CSRF-Token", "bogus")
	}
	if code := post(wrong); code != http.StatusForbidden {
		t.Fatalf("bogus token accepted: %d", code)
	}
}

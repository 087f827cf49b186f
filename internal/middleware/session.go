package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"
)

const sessionCookieName = "QW_SESSION"

// SessionData is the whole client-held state: identity, login flag and the
// credential token issued by the user service. It lives in an HMAC-signed
// cookie, so it survives reloads but a tampered cookie reads as empty.
type SessionData struct {
	ID        string    `json:"id"`
	UserID    int       `json:"uid,omitempty"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	LoggedIn  bool      `json:"li,omitempty"`
	Token     string    `json:"tok,omitempty"`
	Locale    string    `json:"locale,omitempty"`
	CSRFToken string    `json:"csrf,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// dirty marks the session for re-writing at response time
	dirty bool `json:"-"`
}

var sessionSignKey []byte
var sessionSecure bool

// ConfigureSessions sets the signing key and cookie security. An empty key
// falls back to a process-ephemeral one, which is acceptable only for dev.
func ConfigureSessions(signingKey string, secure bool) {
	if signingKey == "" {
		sessionSignKey = make([]byte, 32)
		if _, err := rand.Read(sessionSignKey); err != nil {
			log.Printf("session: generate ephemeral key: %v", err)
			sessionSignKey = []byte("insecure-dev-key-set-QW_WEB_SESSION_SIGNING_KEY")
		}
		log.Printf("session: using ephemeral signing key; set QW_WEB_SESSION_SIGNING_KEY for production")
	} else {
		sessionSignKey = []byte(signingKey)
	}
	sessionSecure = secure
}

// Session loads or initializes the session and stores it in request context.
// The cookie is (re)written just before the first body write when dirty.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionSignKey == nil {
			ConfigureSessions("", false)
		}
		sd, fromCookie := readSessionCookie(r)
		if sd.ID == "" {
			sd.ID = randID()
			sd.CreatedAt = time.Now().UTC()
			sd.UpdatedAt = sd.CreatedAt
			sd.CSRFToken = newCSRFToken()
			sd.dirty = true
		}
		ctx := contextWithSession(r, sd)
		rw := NewResponseRecorder(w)
		rw.SetBeforeWrite(func(w http.ResponseWriter) {
			if sd.dirty || !fromCookie {
				writeSessionCookie(w, sd)
			}
		})
		next.ServeHTTP(rw, r.WithContext(ctx))
		if !rw.wrote && (sd.dirty || !fromCookie) {
			writeSessionCookie(w, sd)
		}
	})
}

func contextWithSession(r *http.Request, s *SessionData) context.Context {
	ctx := context.WithValue(r.Context(), ctxKeySession, s)
	if s.LoggedIn {
		ctx = WithUser(ctx, &User{ID: s.UserID, Name: s.Name, Email: s.Email})
	}
	return ctx
}

// GetSession returns the session from context, or an empty one.
func GetSession(r *http.Request) *SessionData {
	if v := r.Context().Value(ctxKeySession); v != nil {
		if sd, ok := v.(*SessionData); ok {
			return sd
		}
	}
	return &SessionData{}
}

// MarkDirty flags the session for writing at the end of the request.
func (s *SessionData) MarkDirty() {
	s.dirty = true
	s.UpdatedAt = time.Now().UTC()
}

// SignIn records a successful login or registration. The session id is
// regenerated to prevent fixation across the privilege change.
func (s *SessionData) SignIn(userID int, name, email, token string) {
	s.UserID = userID
	s.Name = name
	s.Email = email
	s.Token = token
	s.LoggedIn = true
	s.RegenerateID()
}

// Reset clears identity, login flag and stored credential in full, leaving a
// fresh anonymous session. Used on logout, before the redirect is issued.
func (s *SessionData) Reset() {
	s.UserID = 0
	s.Name = ""
	s.Email = ""
	s.Token = ""
	s.LoggedIn = false
	s.RegenerateID()
}

// RegenerateID assigns a new session id and CSRF token.
func (s *SessionData) RegenerateID() {
	s.ID = randID()
	s.CSRFToken = newCSRFToken()
	s.MarkDirty()
}

func readSessionCookie(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return &SessionData{}, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return &SessionData{}, false
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return &SessionData{}, false
	}
	mac := hmac.New(sha256.New, sessionSignKey)
	mac.Write(payload)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := json.Unmarshal(payload, &sd); err != nil {
		return &SessionData{}, false
	}
	return &sd, true
}

func writeSessionCookie(w http.ResponseWriter, sd *SessionData) {
	b, _ := json.Marshal(sd)
	mac := hmac.New(sha256.New, sessionSignKey)
	mac.Write(b)
	val := base64.RawURLEncoding.EncodeToString(b) + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    val,
		Path:     "/",
		HttpOnly: true,
		Secure:   sessionSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

func randID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

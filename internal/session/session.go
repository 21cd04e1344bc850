// Package session carries the per-client temp-file paths between requests in
// a signed cookie.
package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// Session keys for the stored report paths.
const (
	KeyUploadedPDF  = "uploaded_pdf_path"
	KeyConductorPDF = "conductor_pdf_path"
	KeySheathPDF    = "sheath_pdf_path"
)

const cookieName = "cablecalc_session"

type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Path returns the stored path for key, or "" when the session has none.
// A missing or tampered cookie reads as an empty session.
func (m *Manager) Path(r *http.Request, key string) string {
	sess, _ := m.store.Get(r, cookieName)
	if v, ok := sess.Values[key].(string); ok {
		return v
	}
	return ""
}

// SetPath stores path under key and writes the session cookie. The path
// previously stored under key is returned so the caller can release the file
// it points to.
func (m *Manager) SetPath(w http.ResponseWriter, r *http.Request, key, path string) (string, error) {
	sess, _ := m.store.Get(r, cookieName)
	old, _ := sess.Values[key].(string)
	sess.Values[key] = path
	if err := sess.Save(r, w); err != nil {
		return old, fmt.Errorf("save session: %w", err)
	}
	return old, nil
}

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRoundtrip(t *testing.T) {
	m := NewManager("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/extract", nil)

	old, err := m.SetPath(w, r, KeyUploadedPDF, "/tmp/a.pdf")
	require.NoError(t, err)
	assert.Empty(t, old)
	require.NotEmpty(t, w.Result().Cookies())

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r2.AddCookie(c)
	}
	assert.Equal(t, "/tmp/a.pdf", m.Path(r2, KeyUploadedPDF))
	assert.Equal(t, "", m.Path(r2, KeyConductorPDF))

	w2 := httptest.NewRecorder()
	old, err = m.SetPath(w2, r2, KeyUploadedPDF, "/tmp/b.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.pdf", old)
}

func TestManagerNoCookie(t *testing.T) {
	m := NewManager("test-secret")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", m.Path(r, KeyUploadedPDF))
}

func TestManagerTamperedCookie(t *testing.T) {
	m := NewManager("test-secret")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: "not-a-signed-session"})
	assert.Equal(t, "", m.Path(r, KeyUploadedPDF))
}

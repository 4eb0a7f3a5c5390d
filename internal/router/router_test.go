package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/likeboard/internal/utils/auth"
)

const testSecret = "super-secret-key"

type stubHandler struct {
	name string
}

func (s stubHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Handler", s.name)
	w.WriteHeader(http.StatusTeapot)
}

type h struct{}

func (h) Signup(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "signup"}.ServeHTTP(w, r)
}
func (h) Login(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "login"}.ServeHTTP(w, r)
}
func (h) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "update_password"}.ServeHTTP(w, r)
}
func (h) Me(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "me"}.ServeHTTP(w, r)
}
func (h) GetUser(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "get_user"}.ServeHTTP(w, r)
}
func (h) Like(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "like"}.ServeHTTP(w, r)
}
func (h) Unlike(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "unlike"}.ServeHTTP(w, r)
}
func (h) MostLiked(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "most_liked"}.ServeHTTP(w, r)
}
func (h) Ping(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "ping"}.ServeHTTP(w, r)
}

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	issuer := auth.NewIssuer(testSecret)
	token, err := issuer.Issue(1, "alice")
	require.NoError(t, err)

	r := New(issuer, slog.Default())
	r.SetRouter(h{})
	srv := httptest.NewServer(r.GetRouter())
	t.Cleanup(srv.Close)
	return srv, token
}

func do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	err = resp.Body.Close()
	require.NoError(t, err)
	return resp
}

func TestCustomRouter_Route_happyTests(t *testing.T) {
	srv, token := newTestServer(t)

	tests := []struct {
		method   string
		path     string
		withAuth bool
		wantName string
	}{
		{http.MethodPost, "/signup", false, "signup"},
		{http.MethodPost, "/login", false, "login"},
		{http.MethodPost, "/me/update-password", true, "update_password"},
		{http.MethodGet, "/me", true, "me"},
		{http.MethodGet, "/user/1", false, "get_user"},
		{http.MethodPost, "/user/2/like", true, "like"},
		{http.MethodPost, "/user/2/unlike", true, "unlike"},
		{http.MethodGet, "/most-liked", false, "most_liked"},
		{http.MethodGet, "/ping", false, "ping"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, http.NoBody)
			require.NoError(t, err)
			if tt.withAuth {
				req.Header.Set("Authorization", "Bearer "+token)
			}

			resp := do(t, req)
			assert.Equal(t, http.StatusTeapot, resp.StatusCode)
			assert.Equal(t, tt.wantName, resp.Header.Get("X-Handler"))
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		})
	}
}

func TestCustomRouter_Route_wrong_routes(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		method   string
		path     string
		wantCode int
	}{
		{http.MethodPost, "/", http.StatusNotFound},
		{http.MethodGet, "/user", http.StatusNotFound},
		{http.MethodGet, "/user/1/friends", http.StatusNotFound},
		{http.MethodPost, "/api/signup", http.StatusNotFound},
		{http.MethodGet, "/ping/", http.StatusNotFound},

		{http.MethodGet, "/signup", http.StatusMethodNotAllowed},
		{http.MethodGet, "/login", http.StatusMethodNotAllowed},
		{http.MethodPost, "/most-liked", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/user/1", http.StatusMethodNotAllowed},
		{http.MethodPost, "/ping?x=true", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, http.NoBody)
			require.NoError(t, err)

			resp := do(t, req)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestCustomRouter_Route_authentication(t *testing.T) {
	srv, token := newTestServer(t)

	tests := []struct {
		method   string
		path     string
		header   string
		wantCode int
	}{
		{http.MethodGet, "/me", "", http.StatusUnauthorized},
		{http.MethodGet, "/me", "Bearer broken", http.StatusUnauthorized},
		{http.MethodPost, "/me/update-password", "", http.StatusUnauthorized},
		{http.MethodPost, "/user/2/like", "", http.StatusUnauthorized},
		{http.MethodPost, "/user/2/unlike", "Token " + token, http.StatusUnauthorized},
		{http.MethodGet, "/user/2", "", http.StatusTeapot},

		// the path id is validated before the token
		{http.MethodPost, "/user/abc/like", "", http.StatusUnprocessableEntity},
		{http.MethodPost, "/user/abc/unlike", "Bearer broken", http.StatusUnprocessableEntity},
		{http.MethodGet, "/user/1.5", "", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, http.NoBody)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp := do(t, req)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			if tt.wantCode != http.StatusTeapot {
				assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			}
		})
	}
}

func TestCustomRouter_Route_content_type(t *testing.T) {
	srv, token := newTestServer(t)

	tests := []struct {
		name        string
		path        string
		contentType string
		wantCode    int
	}{
		{"signup json", "/signup", "application/json", http.StatusTeapot},
		{"signup json with charset", "/signup", "application/json; charset=utf-8", http.StatusTeapot},
		{"signup text", "/signup", "text/plain", http.StatusUnsupportedMediaType},
		{"login form", "/login", "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"update password text", "/me/update-password", "text/plain", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, srv.URL+tt.path,
				strings.NewReader(`{"username":"alice"}`))
			require.NoError(t, err)
			req.Header.Set("Content-Type", tt.contentType)
			req.Header.Set("Authorization", "Bearer "+token)

			resp := do(t, req)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-identity-service/server"
	"github.com/stretchr/testify/require"
)

func preflight(srv *server.Server, path, origin, method string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if method != "" {
		req.Header.Set("Access-Control-Request-Method", method)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestCorsPreflight(t *testing.T) {
	t.Run("allowed origin gets a grant", func(t *testing.T) {
		t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")
		srv, _ := newTestServer(t)

		rec := preflight(srv, server.RouteSignup, "https://app.example.com", http.MethodPost)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("wildcard config grants any origin", func(t *testing.T) {
		t.Setenv("ALLOWED_ORIGINS", "*")
		srv, _ := newTestServer(t)

		rec := preflight(srv, server.RouteLogin, "https://anywhere.example.com", http.MethodPost)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("disallowed origin gets no grant", func(t *testing.T) {
		t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")
		srv, _ := newTestServer(t)

		rec := preflight(srv, server.RouteSignup, "https://evil.example.com", http.MethodPost)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("options without an origin reaches the handler", func(t *testing.T) {
		srv, _ := newTestServer(t)

		rec := preflight(srv, server.RouteSignup, "", "")
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRecoverMiddleware(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.RegisterRouteHandler("GET /boom", server.ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}, srv.APIMiddleware()...))

	rec := doJSON(srv, http.MethodGet, "/boom", "", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeResponse(t, rec)
	require.False(t, resp.Success)
	require.Contains(t, resp.Message, "boom")
}

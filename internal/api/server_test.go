package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mangatrade/internal/api"
	"mangatrade/internal/api/handler/v1handler"
	mocktrading "mangatrade/internal/trading/mock"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.DevelopmentEnvironment, "error"); err != nil {
		panic(err)
	}
	m.Run()
}

func newKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return priv, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func newServer(t *testing.T, deps api.Deps, pub string) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	srv, err := api.NewServer(deps, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: pub},
		Addr:              ":0",
		ReadTimeout:       5 * time.Second,
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
		Registerer:        reg,
		Gatherer:          reg,
	})
	require.NoError(t, err)

	return srv.Handler
}

func get(h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestServer_KeepAliveAndHealth(t *testing.T) {
	h := newServer(t, api.Deps{Ping: func(context.Context) error { return nil }}, "")

	rec := get(h, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, api.KeepAliveMessage, rec.Body.String())

	rec = get(h, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	// only the root path is the keep-alive endpoint
	rec = get(h, "/something", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_HealthUnavailable(t *testing.T) {
	h := newServer(t, api.Deps{Ping: func(context.Context) error { return errors.New("db down") }}, "")

	rec := get(h, "/healthz", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

func TestServer_SpecsAndMetrics(t *testing.T) {
	h := newServer(t, api.Deps{}, "")

	rec := get(h, "/specs/v1.yaml", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/v1/matches")

	// a request was served above, so the latency histogram has data
	rec = get(h, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "mangatrade_http_request_duration_seconds")
}

func TestServer_V1NotMountedWithoutKey(t *testing.T) {
	h := newServer(t, api.Deps{}, "")

	rec := get(h, "/v1/matches", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_V1Authenticated(t *testing.T) {
	priv, pub := newKeyPair(t)
	ctrl := gomock.NewController(t)
	m := mocktrading.NewMockService(ctrl)
	h := newServer(t, api.Deps{Deps: v1handler.Deps{Trading: m}}, pub)

	// missing token
	rec := get(h, "/v1/matches", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "UNAUTHORIZED"))

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   "99",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(priv)
	require.NoError(t, err)

	m.EXPECT().FindMatches(gomock.Any(), domain.OwnerID("99")).
		Return(domain.Matches{Outcome: domain.MatchOutcomeNone}, nil)

	rec = get(h, "/v1/matches", http.Header{"Authorization": {"Bearer " + token}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"no_matches","offers":[],"seekers":[]}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_CORSPreflight(t *testing.T) {
	h := newServer(t, api.Deps{}, "")

	req := httptest.NewRequest(http.MethodOptions, "/v1/lists/wishlist", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

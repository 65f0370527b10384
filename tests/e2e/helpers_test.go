//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	categoryrepo "github.com/heartmarshall/legends-backend/internal/adapter/postgres/category"
	georepo "github.com/heartmarshall/legends-backend/internal/adapter/postgres/geo"
	legendrepo "github.com/heartmarshall/legends-backend/internal/adapter/postgres/legend"
	"github.com/heartmarshall/legends-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/legends-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/legends-backend/internal/auth"
	"github.com/heartmarshall/legends-backend/internal/config"
	authsvc "github.com/heartmarshall/legends-backend/internal/service/auth"
	categorysvc "github.com/heartmarshall/legends-backend/internal/service/category"
	geosvc "github.com/heartmarshall/legends-backend/internal/service/geo"
	legendsvc "github.com/heartmarshall/legends-backend/internal/service/legend"
	"github.com/heartmarshall/legends-backend/internal/transport/middleware"
	"github.com/heartmarshall/legends-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// fakeAssets stands in for the image host.
// ---------------------------------------------------------------------------

type fakeAssets struct {
	mu       sync.Mutex
	uploaded map[string][]byte
	deleted  []string
	seq      int
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{uploaded: make(map[string][]byte)}
}

func (f *fakeAssets) Upload(_ context.Context, r io.Reader) (string, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	publicID := fmt.Sprintf("legendsImages/e2e-%d", f.seq)
	f.uploaded[publicID] = data
	return "https://res.example.com/" + publicID + ".png", publicID, nil
}

func (f *fakeAssets) Delete(_ context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, publicID)
	delete(f.uploaded, publicID)
	return nil
}

func (f *fakeAssets) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Assets *fakeAssets
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	assets := newFakeAssets()

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: bcrypt.MinCost,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, userrepo.New(pool), jwtMgr, authCfg)
	geoService := geosvc.NewService(logger, georepo.New(pool))
	categoryService := categorysvc.NewService(logger, categoryrepo.New(pool))
	legendService := legendsvc.NewService(logger, legendrepo.New(pool), assets)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, "test-version"),
		Auth:     rest.NewAuthHandler(authService, logger),
		Geo:      rest.NewGeoHandler(geoService, logger),
		Category: rest.NewCategoryHandler(categoryService, logger),
		Legend:   rest.NewLegendHandler(legendService, logger, 1<<20),
	}, rest.RouterDeps{
		Logger: logger,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		TokenValidator: authService,
		RateLimiter:    middleware.NewRateLimiter(time.Minute),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Assets: assets,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// do sends a request and decodes the JSON response into out (if non-nil).
func (ts *testServer) do(t *testing.T, req *http.Request, token string, out any) int {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "decode %s %s", req.Method, req.URL.Path)
	}
	return resp.StatusCode
}

func (ts *testServer) get(t *testing.T, path, token string, out any) int {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	return ts.do(t, req, token, out)
}

func (ts *testServer) delete(t *testing.T, path, token string, out any) int {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	require.NoError(t, err)
	return ts.do(t, req, token, out)
}

func (ts *testServer) postJSON(t *testing.T, path string, body any, out any) int {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return ts.do(t, req, "", out)
}

// sendForm sends fields (and an optional image) as multipart/form-data.
func (ts *testServer) sendForm(t *testing.T, method, path, token string, fields url.Values, image []byte, out any) int {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, mw.WriteField(k, v))
		}
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image_file", "legend.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return ts.do(t, req, token, out)
}

// createTestUserAndGetToken inserts a user directly into the DB and returns
// a valid access token for that user.
func createTestUserAndGetToken(t *testing.T, ts *testServer) string {
	t.Helper()

	u := testhelper.SeedUser(t, ts.Pool, "not-a-real-hash")
	tok, _, err := ts.jwt.GenerateAccessToken(u.ID)
	require.NoError(t, err)
	return tok
}

// ---------------------------------------------------------------------------
// Response shapes.
// ---------------------------------------------------------------------------

type detailBody struct {
	Detail string `json:"detail"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

type legendBody struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	CategoryID         int64   `json:"category_id"`
	LegendDate         string  `json:"legend_date"`
	ImageURL           *string `json:"image_url"`
	CloudinaryPublicID *string `json:"cloudinary_public_id"`
	DistrictID         int64   `json:"district_id"`
}

type legendViewBody struct {
	legendBody
	CategoryName string `json:"category_name"`
	DistrictName string `json:"district_name"`
	CantonID     int64  `json:"canton_id"`
	CantonName   string `json:"canton_name"`
	ProvinceID   int64  `json:"province_id"`
	ProvinceName string `json:"province_name"`
}

type authBody struct {
	AccessToken string `json:"accessToken"`
	User        struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// Package integration exercises the HTTP API end to end against PostgreSQL.
package integration

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frankit/internal/auth"
	"frankit/internal/database"
	"frankit/internal/database/dbtest"
	"frankit/internal/handler"
	"frankit/internal/repository"
	"frankit/internal/router"
	"frankit/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testJWTSecret is a base64 encoded 32 byte key.
var testJWTSecret = base64.StdEncoding.EncodeToString([]byte("integration-test-signing-key-32b"))

// TestServer is a fully wired API backed by a container database.
type TestServer struct {
	DB      *dbtest.TestDB
	Handler http.Handler
	token   string
}

// SetupTestServer starts a database and wires the API the way cmd/api does.
func SetupTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := dbtest.Setup(t)
	logger := zerolog.Nop()

	key, err := base64.StdEncoding.DecodeString(testJWTSecret)
	require.NoError(t, err)

	tokens := auth.NewTokenProvider(key, time.Hour)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tx := database.NewTransactor(testDB.Pool, logger)

	userRepo := repository.NewUserRepository(logger)
	productRepo := repository.NewProductRepository(logger)
	optionRepo := repository.NewProductOptionRepository(logger)
	detailRepo := repository.NewOptionDetailRepository(logger)
	orders := repository.NewOrderRepository(testDB.Pool, logger)

	productService := service.NewProductService(tx, productRepo, orders, logger)
	optionService := service.NewProductOptionService(tx, productRepo, optionRepo, detailRepo, orders, logger)
	detailService := service.NewOptionDetailService(tx, optionRepo, detailRepo, orders, logger)
	userService := service.NewUserService(tx, userRepo, hasher, logger)
	authService := service.NewAuthService(tx, userRepo, hasher, tokens, logger)

	h := router.New(
		handler.NewAuthHandler(authService, logger),
		handler.NewUserHandler(userService, logger),
		handler.NewProductHandler(productService, logger),
		handler.NewOptionHandler(optionService, logger),
		handler.NewDetailHandler(detailService, logger),
		tokens,
		logger,
	)

	return &TestServer{DB: testDB, Handler: h}
}

// Reset clears all tables and logs in as a fresh admin account.
func (s *TestServer) Reset(t *testing.T) {
	t.Helper()

	dbtest.Truncate(t, s.DB.Pool)

	w := s.Do(t, http.MethodPost, "/api/users/register", map[string]string{
		"email": "admin@frankit.test", "password": "admin-password",
	}, false)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.Do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "admin@frankit.test", "password": "admin-password",
	}, false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	s.token = resp.Token
}

// Do sends a JSON request, attaching the admin token when authed is set.
func (s *TestServer) Do(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.Handler.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a response body into v.
func Decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

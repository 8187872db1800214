package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonathan/cv-match/internal/engine"
	"github.com/jonathan/cv-match/internal/types"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	s, err := New(cfg, engine.New(engine.Options{}), zap.NewNop())
	require.NoError(t, err)
	return s
}

func doRequest(s *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func analyzeBody(t *testing.T) string {
	t.Helper()
	req := types.AnalyzeRequest{
		CV: &types.CVData{
			PersonalInfo: types.PersonalInfo{Name: "Jane Doe", Title: "Engineer"},
			Skills:       []types.SkillEntry{{Name: "Docker"}, {Name: "PostgreSQL"}},
		},
		Posting: &types.JobPosting{
			Title:       "Backend Engineer",
			Description: "Build services with Docker.",
			Skills:      []string{"Go", "Docker"},
		},
	}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return string(data)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, Config{Port: 8080})

	rec := doRequest(s, http.MethodGet, "/api/v1/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t, Config{Port: 8080})

	rec := doRequest(s, http.MethodPost, "/api/v1/analyze", analyzeBody(t), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var result engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Greater(t, result.Score, 0.0)
	assert.Contains(t, result.Analysis.KeywordMatches, "docker")
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	s := newTestServer(t, Config{Port: 8080})

	rec := doRequest(s, http.MethodPost, "/api/v1/analyze", "{not json", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}

func TestHandleAnalyze_MissingPosting(t *testing.T) {
	s := newTestServer(t, Config{Port: 8080})

	rec := doRequest(s, http.MethodPost, "/api/v1/analyze", `{"cv": {}}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScore_ReturnsBreakdownOnly(t *testing.T) {
	s := newTestServer(t, Config{Port: 8080})

	rec := doRequest(s, http.MethodPost, "/api/v1/score", analyzeBody(t), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "overall")
	assert.NotContains(t, body, "suggestions")
}

func TestHandleLogin_AuthDisabled(t *testing.T) {
	s := newTestServer(t, Config{Port: 8080})

	rec := doRequest(s, http.MethodPost, "/api/v1/login", `{"password": "x"}`, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunEndpoints_PersistenceDisabled(t *testing.T) {
	s := newTestServer(t, Config{Port: 8080})

	assert.Equal(t, http.StatusNotFound, doRequest(s, http.MethodGet, "/api/v1/runs", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(s, http.MethodGet, "/api/v1/runs/abc", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(s, http.MethodDelete, "/api/v1/runs/abc", "", nil).Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, Config{Port: 8080})

	rec := doRequest(s, http.MethodOptions, "/api/v1/analyze", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func setupAuthEnv(t *testing.T) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("API_PASSWORD_HASH", string(hash))
}

func TestAuth_LoginAndAuthorizedRequest(t *testing.T) {
	setupAuthEnv(t)
	s := newTestServer(t, Config{Port: 8080, EnableAuth: true})

	rec := doRequest(s, http.MethodPost, "/api/v1/login", `{"password": "correct-horse"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var login types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	rec = doRequest(s, http.MethodPost, "/api/v1/analyze", analyzeBody(t),
		map[string]string{"Authorization": "Bearer " + login.Token})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_WrongPassword(t *testing.T) {
	setupAuthEnv(t)
	s := newTestServer(t, Config{Port: 8080, EnableAuth: true})

	rec := doRequest(s, http.MethodPost, "/api/v1/login", `{"password": "wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MissingAndInvalidTokens(t *testing.T) {
	setupAuthEnv(t)
	s := newTestServer(t, Config{Port: 8080, EnableAuth: true})

	rec := doRequest(s, http.MethodPost, "/api/v1/analyze", analyzeBody(t), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(s, http.MethodPost, "/api/v1/analyze", analyzeBody(t),
		map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTService_TokenRoundTrip(t *testing.T) {
	setupAuthEnv(t)
	s := newTestServer(t, Config{Port: 8080, EnableAuth: true})

	token, err := s.jwtService.GenerateToken()
	require.NoError(t, err)

	claims, err := s.jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.SessionID)

	_, err = s.jwtService.ValidateToken("")
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := bearerToken(req)
	assert.False(t, ok)

	req.Header.Set("Authorization", "Basic abc")
	_, ok = bearerToken(req)
	assert.False(t, ok)

	req.Header.Set("Authorization", "Bearer abc123")
	token, ok := bearerToken(req)
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)
}

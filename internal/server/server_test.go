package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bank-statement-generator/internal/config"
	"bank-statement-generator/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	cfg     *config.Config
	server  *Server
	handler http.Handler
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.cfg = &config.Config{
		Server: config.ServerConfig{
			Port:             "0",
			Host:             "127.0.0.1",
			Environment:      "testing",
			ReadTimeout:      time.Second,
			WriteTimeout:     time.Second,
			ShutdownTimeout:  time.Second,
			CORSAllowOrigins: []string{"*"},
		},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100},
	}

	registry := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(registry)
	s.server = New(
		s.cfg,
		services.NewStatementService(services.DefaultStatementSettings(), metrics),
		services.NewExportService(metrics),
		registry,
	)
	s.handler = s.server.Handler()
}

func (s *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
	s.Contains(rec.Body.String(), "healthy")
}

func (s *ServerTestSuite) TestGenerateAndMetrics() {
	rec := s.do(http.MethodPost, "/api/v1/statements/generate",
		`{"statement_year":2024,"statement_month":6,"accounts":[{"type":"checking"},{"type":"savings"}],"seed":11}`)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var response struct {
		Meta struct {
			Accounts   int `json:"accounts"`
			Statements int `json:"statements"`
		} `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Meta.Accounts)
	s.Equal(6, response.Meta.Statements)

	metrics := s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, metrics.Code)
	s.Contains(metrics.Body.String(), "statement")
}

func (s *ServerTestSuite) TestValidationErrorGoesThroughErrorHandler() {
	rec := s.do(http.MethodPost, "/api/v1/statements/generate", `{"statement_year":2024,"statement_month":14}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "statement_month")
}

func (s *ServerTestSuite) TestExportCSV() {
	rec := s.do(http.MethodPost, "/api/v1/statements/export/csv",
		`{"statement_year":2024,"statement_month":6,"accounts":[{"type":"credit"}],"seed":3}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/csv", rec.Header().Get("Content-Type"))
	s.True(strings.HasPrefix(rec.Body.String(), "account_id,"))
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/nope", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_006")
}

func (s *ServerTestSuite) TestRun_StopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.server.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(3 * time.Second):
		s.Fail("server did not stop after cancel")
	}
}

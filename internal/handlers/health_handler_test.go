package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthCheckHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	handler *HealthCheckHandler
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerTestSuite))
}

func (s *HealthCheckHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.handler = NewHealthCheckHandler()
}

func (s *HealthCheckHandlerTestSuite) TestHealthCheck_Healthy() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.HealthCheck(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body["status"])
	s.NotEmpty(body["time"])
	s.NotEmpty(body["uptime"])
}

func (s *HealthCheckHandlerTestSuite) TestHealthCheck_Draining() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")

	s.handler.Drain()
	err := s.handler.HealthCheck(c)

	s.NoError(err)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_002")
	s.Contains(rec.Body.String(), "trace-123")
}

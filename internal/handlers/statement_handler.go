package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bank-statement-generator/internal/dto"
	apierrors "bank-statement-generator/internal/errors"
	"bank-statement-generator/internal/models"
	"bank-statement-generator/internal/services"

	"github.com/labstack/echo/v4"
)

type StatementHandler struct {
	statementService services.StatementServiceInterface
	exportService    services.ExportServiceInterface
}

func NewStatementHandler(
	statementService services.StatementServiceInterface,
	exportService services.ExportServiceInterface,
) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		exportService:    exportService,
	}
}

// GenerateStatements generates a chain of monthly statements for the configured accounts
//
// Method: POST /api/v1/statements/generate
//
// Request body: GenerateStatementsRequest
//   - statement_year: Integer year of the last statement (required)
//   - statement_month: Integer month of the last statement, 1-12 (required)
//   - statement_count: 3, 6, 12 or 24 (optional, defaults to 3)
//   - accounts: Array of account configs (at least one)
//   - transfer_frequency: none, low, medium or high (optional, defaults to medium)
//   - seed: Integer seed for reproducible output (optional)
//
// Success Response: 200 OK
//   - data: GenerationResult
//   - meta: seed, accounts, statements, transactions
//
// Error Responses:
//   - 400: Malformed body or field validation failure
//   - 422: No accounts, or a request that cannot produce statements
//   - 503: Request cancelled before generation finished
//   - 500: Internal server error
func (h *StatementHandler) GenerateStatements(c echo.Context) error {
	result, err := h.generate(c)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: result,
		Meta: dto.NewGenerationMeta(result),
	})
}

// ExportStatements generates statements and returns them as a downloadable file
//
// Method: POST /api/v1/statements/export/:format
//
// Path parameters:
//   - format: csv or json
//
// Request body: GenerateStatementsRequest
//
// Success Response: 200 OK with text/csv or application/json attachment
//
// Error Responses:
//   - 400: Unsupported format or field validation failure
//   - 422: No accounts, or a request that cannot produce statements
//   - 500: Internal server error
func (h *StatementHandler) ExportStatements(c echo.Context) error {
	format := strings.ToLower(c.Param("format"))
	contentType, ok := exportContentTypes[format]
	if !ok {
		return SendError(c, apierrors.GenerationUnsupportedExport, apierrors.WithDetails("format must be csv or json"))
	}

	result, err := h.generate(c)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	var buf bytes.Buffer
	if err := h.exportService.Export(&buf, format, result); err != nil {
		return h.handleServiceError(c, err)
	}

	filename := fmt.Sprintf("statements-%s.%s", result.ID, format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}

// GetDefaultAccounts returns the default account configs for the requested counts
//
// Method: GET /api/v1/statements/defaults
//
// Query parameters:
//   - checking: Number of checking accounts, 0-3 (optional, defaults to 1)
//   - savings: Number of savings accounts, 0-2 (optional, defaults to 1)
//   - credit: Number of credit accounts, 0-2 (optional, defaults to 1)
//
// Success Response: 200 OK
//   - data: Array of account configs
func (h *StatementHandler) GetDefaultAccounts(c echo.Context) error {
	req := dto.DefaultAccountsRequest{
		Checking: getIntParam(c, "checking", 1),
		Savings:  getIntParam(c, "savings", 1),
		Credit:   getIntParam(c, "credit", 1),
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: h.statementService.DefaultAccounts(req.Counts()),
	})
}

var exportContentTypes = map[string]string{
	services.ExportFormatCSV:  "text/csv",
	services.ExportFormatJSON: echo.MIMEApplicationJSON,
}

// errBadRequestBody marks a body that could not be bound
var errBadRequestBody = errors.New("invalid request body")

func (h *StatementHandler) generate(c echo.Context) (*models.GenerationResult, error) {
	var req dto.GenerateStatementsRequest
	if err := c.Bind(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRequestBody, err)
	}

	if err := c.Validate(req); err != nil {
		return nil, err
	}

	request, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	result, err := h.statementService.Generate(c.Request().Context(), request)
	if err != nil {
		return nil, err
	}

	slog.Info("statements generated via api",
		"trace_id", getTraceID(c),
		"generation_id", result.ID,
		"statements", result.StatementCount(),
	)
	return result, nil
}

func (h *StatementHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errBadRequestBody):
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("request body must be valid JSON"))
	case isValidationError(err):
		return err
	case errors.Is(err, models.ErrNoAccounts):
		return SendError(c, apierrors.GenerationNoAccounts)
	case errors.Is(err, models.ErrInvalidAccountType):
		return SendError(c, apierrors.GenerationInvalidAccountType, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrInvalidTransferFrequency):
		return SendError(c, apierrors.GenerationInvalidFrequency, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrInvalidStatementMonth), errors.Is(err, models.ErrInvalidStatementYear):
		return SendError(c, apierrors.GenerationInvalidPeriod, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrUnknownExportFormat):
		return SendError(c, apierrors.GenerationUnsupportedExport)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return SendError(c, apierrors.GenerationCancelled)
	}

	return SendSystemError(c, err)
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stocklens/stocklens/internal/domain/dto"
	"github.com/stocklens/stocklens/internal/provider"
	"github.com/stocklens/stocklens/internal/service"
)

// Handler provides the HTTP handler for the analysis endpoint.
//
// Responsibilities:
//   - Bind and validate the incoming JSON body
//   - Run the analysis pipeline through the service layer
//   - Map pipeline failures to the right HTTP status class
//   - Return structured JSON responses
type Handler struct {
	svc service.AnalyzeService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.AnalyzeService) *Handler {
	return &Handler{svc: svc}
}

// Analyze handles POST /api/analyze requests.
//
// Status mapping:
//   - 400: malformed body or validation failure (caller can fix).
//   - 502: price provider unreachable (transient, try later).
//   - 404: provider rejected the symbol or the range holds no data; the
//     message names the ticker and range.
//   - 500: anything unexpected.
//
// Analyze godoc
// @Summary      Analyze a ticker over a date range
// @Description  Fetches daily price history, computes closing-price statistics and optionally attaches an AI-generated narrative
// @Tags         analyze
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalyzeRequest   true  "Ticker and date range"
// @Success      200      {object}  dto.AnalyzeResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse    "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse    "Not Found"
// @Failure      502      {object}  dto.ErrorResponse    "Upstream Unavailable"
// @Failure      500      {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	q, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	resp, err := h.svc.Analyze(c.Request.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, provider.ErrUnavailable):
			c.JSON(http.StatusBadGateway, dto.NewErrorResponse(
				fmt.Sprintf("price provider request failed for %s", q.Ticker), err))
		case errors.Is(err, provider.ErrRejected), errors.Is(err, provider.ErrNoData):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(
				fmt.Sprintf("no price data for %s between %s and %s", q.Ticker, q.Start, q.End), err))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("unexpected server error", err))
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

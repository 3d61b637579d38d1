package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/camp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/camp_ledger_app/internal/dto"
	"github.com/SscSPs/camp_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the monthly summary.
type reportingHandler struct {
	summaryService portssvc.SummaryService
}

func newReportingHandler(ss portssvc.SummaryService) *reportingHandler {
	return &reportingHandler{summaryService: ss}
}

func registerReportingRoutes(rg *gin.RouterGroup, summaryService portssvc.SummaryService) {
	h := newReportingHandler(summaryService)

	summary := rg.Group("/summary")
	{
		summary.GET("/monthly", h.getMonthlySummary)
	}
}

// getMonthlySummary godoc
// @Summary Monthly revenue, expenses and benefits
// @Description Buckets clients by booking month and expenses by expense month for one year.
// @Description Without year, the current year is used when it has data, otherwise the latest year.
// @Tags reports
// @Produce json
// @Param year query int false "Year"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary/monthly [get]
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("Invalid year parameter", slog.String("year", raw))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year format, must be a number"})
			return
		}
		year = &y
	}

	report, err := h.summaryService.MonthlySummary(c.Request.Context(), year)
	if err != nil {
		respondError(c, logger, err, "Failed to generate summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(report))
}

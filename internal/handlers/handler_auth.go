package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/camp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/camp_ledger_app/internal/dto"
	"github.com/SscSPs/camp_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles the shared password login.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. limit is applied to login only.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, limit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", limit, h.login)
	}
}

// login godoc
// @Summary Log in with the shared password
// @Description Exchanges the shared password for a signed access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		respondError(c, logger, err, "Failed to log in")
		return
	}

	logger.Info("Access token issued", slog.Time("expires_at", expiresAt))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

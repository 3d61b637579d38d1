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

// clientHandler handles HTTP requests related to clients and their booked services.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.GET("", h.getClients)
		clients.POST("", h.createClient)
		clients.PUT("", h.replaceClient)
		clients.DELETE("", h.deleteClient)
		clients.POST("/booking", h.bookClient)
		clients.PATCH("/:id", h.patchClient)
		clients.GET("/:id/invoice", h.getInvoice)

		services := clients.Group("/:id/services")
		{
			services.POST("", h.addService)
			services.PUT("/:index", h.updateService)
			services.DELETE("/:index", h.removeService)
			services.POST("/:index/settle", h.settleService)
		}
	}
}

// getClients godoc
// @Summary List clients or fetch one
// @Description Returns every client, or a single client when the id query parameter is set.
// @Tags clients
// @Produce json
// @Param id query string false "Client ID"
// @Success 200 {array} dto.ClientResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) getClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if id := c.Query("id"); id != "" {
		client, err := h.clientService.GetClient(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err, "Failed to retrieve client")
			return
		}
		c.JSON(http.StatusOK, dto.ToClientResponse(client))
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// createClient godoc
// @Summary Create a client
// @Description Stores a client with fully formed services. Totals are recomputed server side.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// bookClient godoc
// @Summary Submit the booking form
// @Description Creates a client from booking rows. Each row gives a start date and a duration in hours.
// @Tags clients
// @Accept json
// @Produce json
// @Param booking body dto.BookClientRequest true "Booking"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/booking [post]
func (h *clientHandler) bookClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BookClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	client, err := h.clientService.BookClient(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to book client")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// replaceClient godoc
// @Summary Replace a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.ReplaceClientRequest true "Client with _id"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [put]
func (h *clientHandler) replaceClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReplaceClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	client, err := h.clientService.ReplaceClient(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// patchClient godoc
// @Summary Edit client fields
// @Description Applies an inline edit. Omitted fields are kept.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param patch body dto.PatchClientRequest true "Fields to change"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [patch]
func (h *clientHandler) patchClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", c.Param("id")))

	var req dto.PatchClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	client, err := h.clientService.PatchClient(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Deletes by id. An unknown id is not an error; deletedCount is 0.
// @Tags clients
// @Accept json
// @Produce json
// @Param body body dto.DeleteByIDRequest true "Client id"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DeleteByIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	deleted, err := h.clientService.DeleteClient(c.Request.Context(), req.ID)
	if err != nil {
		respondError(c, logger, err, "Failed to delete client")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: deleted})
}

// addService godoc
// @Summary Book an extra service for a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param service body dto.ServiceInputRequest true "Service row"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/services [post]
func (h *clientHandler) addService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", c.Param("id")))

	var req dto.ServiceInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	client, err := h.clientService.AddService(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add service")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateService godoc
// @Summary Replace one booked service
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param index path int true "Service position"
// @Param service body dto.ServiceInputRequest true "Service row"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/services/{index} [put]
func (h *clientHandler) updateService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", c.Param("id")))

	index, ok := serviceIndex(c, logger)
	if !ok {
		return
	}
	var req dto.ServiceInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	client, err := h.clientService.UpdateService(c.Request.Context(), c.Param("id"), index, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// removeService godoc
// @Summary Remove one booked service
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Param index path int true "Service position"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/services/{index} [delete]
func (h *clientHandler) removeService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", c.Param("id")))

	index, ok := serviceIndex(c, logger)
	if !ok {
		return
	}

	client, err := h.clientService.RemoveService(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		respondError(c, logger, err, "Failed to remove service")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// settleService godoc
// @Summary Settle the remaining balance of a service
// @Description Records the method used for the remaining payment. The service then reads as PAID.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param index path int true "Service position"
// @Param settle body dto.SettleServiceRequest true "Payment method"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/services/{index}/settle [post]
func (h *clientHandler) settleService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", c.Param("id")))

	index, ok := serviceIndex(c, logger)
	if !ok {
		return
	}
	var req dto.SettleServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	client, err := h.clientService.SettleService(c.Request.Context(), c.Param("id"), index, req.Method)
	if err != nil {
		respondError(c, logger, err, "Failed to settle service")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func serviceIndex(c *gin.Context, logger *slog.Logger) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		logger.Warn("Invalid service index", slog.String("index", c.Param("index")))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Service index must be a non-negative integer"})
		return 0, false
	}
	return index, true
}

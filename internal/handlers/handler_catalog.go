package handlers

import (
	"net/http"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/SscSPs/camp_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// getCatalog godoc
// @Summary Bookable services and payment methods
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Security BearerAuth
// @Router /catalog [get]
func getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CatalogResponse{
		Services:       domain.ServiceCatalog,
		PaymentMethods: domain.PaymentMethods,
	})
}

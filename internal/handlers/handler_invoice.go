package handlers

import (
	"bytes"
	"html/template"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/SscSPs/camp_ledger_app/internal/dto"
	"github.com/SscSPs/camp_ledger_app/internal/middleware"
	"github.com/SscSPs/camp_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
)

const invoiceDateLayout = "02/01/2006"

var statusLabels = map[domain.PaymentStatus]string{
	domain.Paid:          "Payé",
	domain.PartiallyPaid: "Partiellement payé",
	domain.Unpaid:        "Non payé",
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"amount": utils.FormatAmount,
	"date":   func(t time.Time) string { return t.Format(invoiceDateLayout) },
	"status": func(s domain.PaymentStatus) string { return statusLabels[s] },
}).Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>Facture - {{.ClientName}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
td.num, th.num { text-align: right; }
</style>
</head>
<body>
<h1>Facture</h1>
<p>Client : {{.ClientName}}<br>
Téléphone : {{.Phone}}<br>
Mode de paiement : {{.PaymentMethod}}<br>
Date de réservation : {{date .BookingDate}}</p>
<table>
<thead>
<tr><th>Service</th><th>Début</th><th>Fin</th><th class="num">Prix</th><th class="num">Avance</th><th class="num">Reste</th><th>Statut</th></tr>
</thead>
<tbody>
{{range .Services}}<tr><td>{{.Name}}</td><td>{{date .StartDate}}</td><td>{{date .EndDate}}</td><td class="num">{{amount .Price}}</td><td class="num">{{amount .UpfrontPayment}}</td><td class="num">{{amount .RemainingPayment}}</td><td>{{status .Status}}</td></tr>
{{end}}</tbody>
</table>
<p><strong>Total : {{amount .TotalAmount}} TND</strong></p>
</body>
</html>
`))

// getInvoice godoc
// @Summary Client invoice
// @Description Returns the invoice projection as JSON, or as printable HTML with format=html.
// @Tags clients
// @Produce json,html
// @Param id path string true "Client ID"
// @Param format query string false "json or html" default(json)
// @Param download query bool false "Send the HTML as an attachment"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/invoice [get]
func (h *clientHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("id")

	view, err := h.clientService.Invoice(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, logger, err, "Failed to build invoice")
		return
	}

	if !strings.EqualFold(c.Query("format"), "html") {
		c.JSON(http.StatusOK, dto.ToInvoiceResponse(view))
		return
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, view); err != nil {
		respondError(c, logger, err, "Failed to render invoice")
		return
	}
	if c.Query("download") == "true" {
		c.Header("Content-Disposition", invoiceDisposition(clientID))
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// invoiceDisposition quotes or encodes the id so any path value yields a well-formed header.
func invoiceDisposition(clientID string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": "facture-" + clientID + ".html"})
}

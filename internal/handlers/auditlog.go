package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
)

// AuditEntriesResponse carries the formatted audit log
type AuditEntriesResponse struct {
	Entries []string `json:"entries"`
}

// ListAuditEntries godoc
// @Summary List audit log entries
// @Description Returns every audit entry in insertion order, formatted as timestamp, actor, action, and optional details.
// @Tags audit
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} AuditEntriesResponse "Audit log"
// @Router /audit/entries [get]
func (a *API) ListAuditEntries(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "ListAuditEntries")
	defer span.End()

	c.JSON(http.StatusOK, AuditEntriesResponse{Entries: a.auditLog.ListEntries()})
}

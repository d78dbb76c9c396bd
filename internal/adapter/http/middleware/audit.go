package middleware

import (
	"encoding/json"
	"net/http"

	"cubo-pix-gateway/internal/core/domain"
	"cubo-pix-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// AuditLog records successful write operations. It runs after the
// handler and maps the matched route to an audit action.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		action, resourceType := mapRouteToAction(c.Request.Method, c.FullPath())
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			Actor:        c.GetString(CtxAdmin),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
		})
	}
}

func mapRouteToAction(method, route string) (domain.AuditAction, string) {
	switch {
	case method == http.MethodPost && route == "/api/pix/create":
		return domain.AuditActionPixCreate, "pix_charge"
	case method == http.MethodPost && route == "/api/checkout":
		return domain.AuditActionCheckout, "order"
	case method == http.MethodPost && route == "/api/admin/login":
		return domain.AuditActionLogin, "session"
	case method == http.MethodPut && route == "/api/admin/products/:id":
		return domain.AuditActionProductUpsert, "product"
	case method == http.MethodDelete && route == "/api/admin/products/:id":
		return domain.AuditActionProductDelete, "product"
	}
	return "", ""
}

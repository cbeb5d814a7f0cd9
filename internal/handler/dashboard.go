package handler

import (
	"net/http"

	"github.com/lr4302179-jpg/backend-elchicho/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary GET /api/admin/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	respondData(c, http.StatusOK, resp)
}

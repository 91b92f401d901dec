package access

import (
	"net/http"

	"gymdesk/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Scan godoc
// @Summary      Scan member code
// @Description  Resolves a QR or typed member code to the member and the memberships currently granting access.
// @Tags         access
// @Security     BearerAuth
// @Produce      json
// @Param        code  path      string  true  "Member code"
// @Success      200   {object}  AccessCard
// @Failure      404   {object}  api.ErrorResponse
// @Router       /access/{code} [get]
func (h *Handler) Scan(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	card, err := h.svc.Scan(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

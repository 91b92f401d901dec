package discipline

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

// CreateDiscipline godoc
// @Summary      Create discipline
// @Description  Adds an activity category to the gym. Admin only.
// @Tags         disciplines
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateDisciplineRequest  true  "Discipline data"
// @Success      201      {object}  Discipline
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /disciplines [post]
func (h *Handler) CreateDiscipline(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	var req CreateDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	d, err := h.svc.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, d)
}

// ListDisciplines godoc
// @Summary      List disciplines
// @Tags         disciplines
// @Security     BearerAuth
// @Produce      json
// @Param        active  query     bool  false  "Only active disciplines"
// @Success      200     {array}   Discipline
// @Router       /disciplines [get]
func (h *Handler) ListDisciplines(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	list, err := h.svc.List(c.Request.Context(), tenantID, c.Query("active") == "true")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeactivateDiscipline godoc
// @Summary      Deactivate discipline
// @Description  Stops new memberships for a discipline. Existing memberships are untouched. Admin only.
// @Tags         disciplines
// @Security     BearerAuth
// @Produce      json
// @Param        disciplineID  path      int  true  "Discipline ID"
// @Success      200           {object}  api.MessageResponse
// @Failure      404           {object}  api.ErrorResponse
// @Router       /disciplines/{disciplineID}/deactivate [post]
func (h *Handler) DeactivateDiscipline(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}
	id, ok := api.IDParam(c, "disciplineID")
	if !ok {
		return
	}

	if err := h.svc.Deactivate(c.Request.Context(), tenantID, id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "discipline deactivated"})
}

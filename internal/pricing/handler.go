package pricing

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

// ListPlans godoc
// @Summary      List pricing plans of a discipline
// @Tags         pricing
// @Security     BearerAuth
// @Produce      json
// @Param        disciplineID  path      int  true  "Discipline ID"
// @Success      200           {array}   Plan
// @Router       /disciplines/{disciplineID}/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}
	disciplineID, ok := api.IDParam(c, "disciplineID")
	if !ok {
		return
	}

	plans, err := h.svc.ListForDiscipline(c.Request.Context(), tenantID, disciplineID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// CreatePlan godoc
// @Summary      Create pricing plan
// @Description  Admin only. The (discipline, num_people, num_months) triple is unique.
// @Tags         pricing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        disciplineID  path      int                true  "Discipline ID"
// @Param        request       body      CreatePlanRequest  true  "Plan data"
// @Success      201           {object}  Plan
// @Failure      400           {object}  api.ErrorResponse
// @Failure      404           {object}  api.ErrorResponse
// @Failure      409           {object}  api.ErrorResponse
// @Router       /disciplines/{disciplineID}/plans [post]
func (h *Handler) CreatePlan(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}
	disciplineID, ok := api.IDParam(c, "disciplineID")
	if !ok {
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	plan, err := h.svc.Create(c.Request.Context(), tenantID, disciplineID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ResolvePlan godoc
// @Summary      Resolve price
// @Description  Exact match on discipline, party size and duration. 404 means no plan; the desk enters the amount manually.
// @Tags         pricing
// @Security     BearerAuth
// @Produce      json
// @Param        discipline_id  query     int  true  "Discipline ID"
// @Param        num_people     query     int  true  "Party size"
// @Param        num_months     query     int  true  "Duration in months"
// @Success      200            {object}  Plan
// @Failure      400            {object}  api.ErrorResponse
// @Failure      404            {object}  api.ErrorResponse
// @Router       /plans/resolve [get]
func (h *Handler) ResolvePlan(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	var q ResolveQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.BindError(c, err)
		return
	}

	plan, err := h.svc.Resolve(c.Request.Context(), tenantID, q.DisciplineID, q.NumPeople, q.NumMonths)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

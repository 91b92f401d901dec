package membership

import (
	"net/http"
	"strconv"

	"gymdesk/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// CreateIndividual godoc
// @Summary      Create individual membership
// @Description  One member, one discipline. start_date defaults to now; end date is start plus duration_months, clamped to month end.
// @Tags         memberships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateIndividualInput  true  "Membership data"
// @Success      201      {object}  View
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /memberships/individual [post]
func (h *Handler) CreateIndividual(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	var in CreateIndividualInput
	if err := c.ShouldBindJSON(&in); err != nil {
		api.BindError(c, err)
		return
	}

	view, err := h.svc.CreateIndividual(c.Request.Context(), tenantID, in)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// CreateGroup godoc
// @Summary      Create group membership
// @Description  The plan price is split equally between members; the remainder goes to the primary member.
// @Tags         memberships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateGroupInput  true  "Group membership data"
// @Success      201      {object}  View
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /memberships/group [post]
func (h *Handler) CreateGroup(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	var in CreateGroupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		api.BindError(c, err)
		return
	}

	view, err := h.svc.CreateGroup(c.Request.Context(), tenantID, in)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetMembership godoc
// @Summary      Get membership
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Param        membershipID  path      int  true  "Membership ID"
// @Success      200           {object}  View
// @Failure      404           {object}  api.ErrorResponse
// @Router       /memberships/{membershipID} [get]
func (h *Handler) GetMembership(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}
	id, ok := api.IDParam(c, "membershipID")
	if !ok {
		return
	}

	view, err := h.svc.Get(c.Request.Context(), tenantID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// RenewMembership godoc
// @Summary      Renew membership
// @Description  Creates a new membership with the same discipline and members. The source record is left untouched.
// @Tags         memberships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        membershipID  path      int         true  "Source membership ID"
// @Param        request       body      RenewInput  true  "Renewal data"
// @Success      201           {object}  View
// @Failure      400           {object}  api.ErrorResponse
// @Failure      404           {object}  api.ErrorResponse
// @Router       /memberships/{membershipID}/renew [post]
func (h *Handler) RenewMembership(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}
	id, ok := api.IDParam(c, "membershipID")
	if !ok {
		return
	}

	var in RenewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		api.BindError(c, err)
		return
	}

	view, err := h.svc.Renew(c.Request.Context(), tenantID, id, in)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// CancelMembership godoc
// @Summary      Cancel membership
// @Description  Cancelling a cancelled membership is a no-op. Expired memberships cannot be cancelled.
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Param        membershipID  path      int  true  "Membership ID"
// @Success      200           {object}  View
// @Failure      404           {object}  api.ErrorResponse
// @Failure      422           {object}  api.ErrorResponse
// @Router       /memberships/{membershipID}/cancel [post]
func (h *Handler) CancelMembership(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}
	id, ok := api.IDParam(c, "membershipID")
	if !ok {
		return
	}

	view, err := h.svc.Cancel(c.Request.Context(), tenantID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ListMemberMemberships godoc
// @Summary      Membership history of a member
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {array}   View
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/memberships [get]
func (h *Handler) ListMemberMemberships(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}
	memberID, ok := api.IDParam(c, "memberID")
	if !ok {
		return
	}

	views, err := h.svc.ListByMember(c.Request.Context(), tenantID, memberID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// ListExpiring godoc
// @Summary      Memberships expiring soon
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Param        within_days  query     int  false  "Window in days, 1 to 366"  default(7)
// @Success      200          {array}   View
// @Failure      400          {object}  api.ErrorResponse
// @Router       /memberships/expiring [get]
func (h *Handler) ListExpiring(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	within := ExpiringSoonDays
	if raw := c.Query("within_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			api.BadRequest(c, "invalid within_days")
			return
		}
		within = n
	}

	views, err := h.svc.ListExpiring(c.Request.Context(), tenantID, within)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

package member

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

// CreateMember godoc
// @Summary      Register member
// @Description  Creates a member in the caller's gym. A code is generated when none is given.
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateMemberRequest  true  "Member data"
// @Success      201      {object}  Member
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	m, err := h.svc.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// GetMember godoc
// @Summary      Get member
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  Member
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID} [get]
func (h *Handler) GetMember(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}
	id, ok := api.IDParam(c, "memberID")
	if !ok {
		return
	}

	m, err := h.svc.Get(c.Request.Context(), tenantID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// ListMembers godoc
// @Summary      List members
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        active  query     bool  false  "Only active members"
// @Success      200     {array}   Member
// @Router       /members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	members, err := h.svc.List(c.Request.Context(), tenantID, c.Query("active") == "true")
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// DeactivateMember godoc
// @Summary      Deactivate member
// @Description  Marks a member inactive. Members are never deleted. Admin only.
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  Member
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/deactivate [post]
func (h *Handler) DeactivateMember(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}
	id, ok := api.IDParam(c, "memberID")
	if !ok {
		return
	}

	m, err := h.svc.Deactivate(c.Request.Context(), tenantID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

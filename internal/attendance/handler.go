package attendance

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gymdesk/internal/api"
	"gymdesk/internal/calendar"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// CheckIn godoc
// @Summary      Check in a member
// @Description  Records at most one check-in per member per gym-local day. A repeat returns 409 with the earlier check-in attached. An active membership is not required.
// @Tags         attendance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckInInput  true  "Scanned code"
// @Success      201      {object}  CheckInResult
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  ConflictResponse
// @Router       /checkins [post]
func (h *Handler) CheckIn(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	var in CheckInInput
	if err := c.ShouldBindJSON(&in); err != nil {
		api.BindError(c, err)
		return
	}

	result, err := h.svc.CheckIn(c.Request.Context(), tenantID, in)
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, ConflictResponse{
				Error:             ErrAlreadyCheckedIn.Message,
				Code:              ErrAlreadyCheckedIn.Code,
				Member:            conflict.Member,
				ExistingCheckedAt: conflict.ExistingCheckedAt,
				Existing:          conflict.Existing,
			})
			return
		}
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListByDay godoc
// @Summary      Check-ins of a day
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Param        date  query     string  false  "Day as YYYY-MM-DD, defaults to today"
// @Success      200   {array}   Attendance
// @Failure      400   {object}  api.ErrorResponse
// @Router       /attendance [get]
func (h *Handler) ListByDay(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}

	var day time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := calendar.ParseDay(raw)
		if err != nil {
			api.BadRequest(c, err.Error())
			return
		}
		day = d
	}

	list, err := h.svc.ListByDay(c.Request.Context(), tenantID, day)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListMemberAttendance godoc
// @Summary      Attendance history of a member
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true   "Member ID"
// @Param        limit     query     int  false  "Page size"  default(50)
// @Param        offset    query     int  false  "Offset"     default(0)
// @Success      200       {array}   Attendance
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/attendance [get]
func (h *Handler) ListMemberAttendance(c *gin.Context) {
	tenantID, ok := api.Tenant(c)
	if !ok {
		return
	}
	memberID, ok := api.IDParam(c, "memberID")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.svc.ListByMember(c.Request.Context(), tenantID, memberID, limit, offset)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

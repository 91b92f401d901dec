package membership

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) view(args mock.Arguments) (*View, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*View), args.Error(1)
}

func (m *MockService) views(args mock.Arguments) ([]View, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]View), args.Error(1)
}

func (m *MockService) CreateIndividual(ctx context.Context, tenantID int, in CreateIndividualInput) (*View, error) {
	return m.view(m.Called(ctx, tenantID, in))
}

func (m *MockService) CreateGroup(ctx context.Context, tenantID int, in CreateGroupInput) (*View, error) {
	return m.view(m.Called(ctx, tenantID, in))
}

func (m *MockService) Renew(ctx context.Context, tenantID, membershipID int, in RenewInput) (*View, error) {
	return m.view(m.Called(ctx, tenantID, membershipID, in))
}

func (m *MockService) Cancel(ctx context.Context, tenantID, membershipID int) (*View, error) {
	return m.view(m.Called(ctx, tenantID, membershipID))
}

func (m *MockService) Get(ctx context.Context, tenantID, membershipID int) (*View, error) {
	return m.view(m.Called(ctx, tenantID, membershipID))
}

func (m *MockService) ListByMember(ctx context.Context, tenantID, memberID int) ([]View, error) {
	return m.views(m.Called(ctx, tenantID, memberID))
}

func (m *MockService) ListActiveByMember(ctx context.Context, tenantID, memberID int) ([]View, error) {
	return m.views(m.Called(ctx, tenantID, memberID))
}

func (m *MockService) ListExpiring(ctx context.Context, tenantID, withinDays int) ([]View, error) {
	return m.views(m.Called(ctx, tenantID, withinDays))
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("tenant_id", 1)
		c.Next()
	})

	h := NewHandler(svc)
	router.POST("/memberships/individual", h.CreateIndividual)
	router.POST("/memberships/group", h.CreateGroup)
	router.GET("/memberships/expiring", h.ListExpiring)
	router.GET("/memberships/:membershipID", h.GetMembership)
	router.POST("/memberships/:membershipID/renew", h.RenewMembership)
	router.POST("/memberships/:membershipID/cancel", h.CancelMembership)
	router.GET("/members/:memberID/memberships", h.ListMemberMemberships)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateGroup_Handler_PartySizeMismatch(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("CreateGroup", mock.Anything, 1, mock.AnythingOfType("membership.CreateGroupInput")).Return(nil, ErrPartySizeMismatch)

	w := postJSON(router, "/memberships/group",
		`{"discipline_id":3,"pricing_plan_id":8,"members":[{"member_id":12,"is_primary":true}],"payment_method":"cash"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"party_size_mismatch"`)
}

func TestCreateIndividual_Handler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	in := CreateIndividualInput{MemberID: 12, DisciplineID: 3, DurationMonths: 1, TotalAmountCents: 12000, PaymentMethod: PaymentCash}
	svc.On("CreateIndividual", mock.Anything, 1, in).Return(&View{ID: 1, Status: StatusActive, DaysRemaining: 31, Members: []MembershipMember{}}, nil)

	w := postJSON(router, "/memberships/individual",
		`{"member_id":12,"discipline_id":3,"duration_months":1,"total_amount_cents":12000,"payment_method":"cash"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ACTIVE"`)
	assert.Contains(t, w.Body.String(), `"days_remaining":31`)
}

func TestCancelMembership_Handler_Expired(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("Cancel", mock.Anything, 1, 70).Return(nil, ErrCancelExpired)

	w := postJSON(router, "/memberships/70/cancel", "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListExpiring_Handler_DefaultWindow(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("ListExpiring", mock.Anything, 1, ExpiringSoonDays).Return([]View{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/memberships/expiring", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListExpiring_Handler_BadWindow(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/memberships/expiring?within_days=soon", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListExpiring_Handler_WindowTooLarge(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("ListExpiring", mock.Anything, 1, 200000).Return(nil, ErrInvalidWindow)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/memberships/expiring?within_days=200000", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_window")
}

func TestRenewMembership_Handler_NotFound(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("Renew", mock.Anything, 1, 99, RenewInput{DurationMonths: 1, TotalAmountCents: 100, PaymentMethod: PaymentCard}).
		Return(nil, ErrMembershipNotFound)

	w := postJSON(router, "/memberships/99/renew", `{"duration_months":1,"total_amount_cents":100,"payment_method":"card"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

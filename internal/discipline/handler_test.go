package discipline

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

func (m *MockService) Create(ctx context.Context, tenantID int, req CreateDisciplineRequest) (*Discipline, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Discipline), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, tenantID, id int) (*Discipline, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Discipline), args.Error(1)
}

func (m *MockService) List(ctx context.Context, tenantID int, onlyActive bool) ([]Discipline, error) {
	args := m.Called(ctx, tenantID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Discipline), args.Error(1)
}

func (m *MockService) Deactivate(ctx context.Context, tenantID, id int) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func setupRouter(svc Service, tenantID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("tenant_id", tenantID)
		c.Next()
	})

	h := NewHandler(svc)
	router.GET("/disciplines", h.ListDisciplines)
	router.POST("/disciplines", h.CreateDiscipline)
	router.POST("/disciplines/:disciplineID/deactivate", h.DeactivateDiscipline)
	return router
}

func TestCreateDiscipline_Handler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 2)

	svc.On("Create", mock.Anything, 2, CreateDisciplineRequest{Name: "Yoga"}).
		Return(&Discipline{ID: 5, Name: "Yoga", Active: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/disciplines", bytes.NewBufferString(`{"name":"Yoga"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Yoga"`)
	assert.NotContains(t, w.Body.String(), "tenant_id")
}

func TestCreateDiscipline_Handler_Conflict(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 2)

	svc.On("Create", mock.Anything, 2, CreateDisciplineRequest{Name: "Yoga"}).Return(nil, ErrDuplicateName)

	req := httptest.NewRequest(http.MethodPost, "/disciplines", bytes.NewBufferString(`{"name":"Yoga"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListDisciplines_Handler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 2)

	svc.On("List", mock.Anything, 2, false).Return([]Discipline{{ID: 1, Name: "Yoga"}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/disciplines", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestDeactivateDiscipline_Handler_BadID(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 2)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/disciplines/abc/deactivate", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything, mock.Anything)
}

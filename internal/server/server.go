package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gymdesk/internal/access"
	"gymdesk/internal/attendance"
	"gymdesk/internal/auth"
	"gymdesk/internal/config"
	"gymdesk/internal/discipline"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/membership"
	"gymdesk/internal/pricing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers of every domain package.
type Handlers struct {
	Members     *member.Handler
	Disciplines *discipline.Handler
	Plans       *pricing.Handler
	Memberships *membership.Handler
	Attendance  *attendance.Handler
	Access      *access.Handler
}

type Server struct {
	router *gin.Engine
	http   *http.Server
}

func New(cfg *config.Config, h Handlers) *Server {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		cors.New(corsConfig(cfg.CORSAllowOrigins)),
	)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	rateLimit := RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	staff := router.Group("/")
	staff.Use(
		rateLimit,
		authMiddleware,
		auth.RequireRole(auth.RoleStaff, auth.RoleAdmin),
	)
	{
		staff.GET("/members", h.Members.ListMembers)
		staff.POST("/members", h.Members.CreateMember)
		staff.GET("/members/:memberID", h.Members.GetMember)
		staff.GET("/members/:memberID/memberships", h.Memberships.ListMemberMemberships)
		staff.GET("/members/:memberID/attendance", h.Attendance.ListMemberAttendance)

		staff.GET("/disciplines", h.Disciplines.ListDisciplines)
		staff.GET("/disciplines/:disciplineID/plans", h.Plans.ListPlans)
		staff.GET("/plans/resolve", h.Plans.ResolvePlan)

		staff.POST("/memberships/individual", h.Memberships.CreateIndividual)
		staff.POST("/memberships/group", h.Memberships.CreateGroup)
		staff.GET("/memberships/expiring", h.Memberships.ListExpiring)
		staff.GET("/memberships/:membershipID", h.Memberships.GetMembership)
		staff.POST("/memberships/:membershipID/renew", h.Memberships.RenewMembership)
		staff.POST("/memberships/:membershipID/cancel", h.Memberships.CancelMembership)

		staff.GET("/access/:code", h.Access.Scan)
		staff.POST("/checkins", h.Attendance.CheckIn)
		staff.GET("/attendance", h.Attendance.ListByDay)
	}

	admin := router.Group("/")
	admin.Use(
		rateLimit,
		authMiddleware,
		auth.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/members/:memberID/deactivate", h.Members.DeactivateMember)
		admin.POST("/disciplines", h.Disciplines.CreateDiscipline)
		admin.POST("/disciplines/:disciplineID/deactivate", h.Disciplines.DeactivateDiscipline)
		admin.POST("/disciplines/:disciplineID/plans", h.Plans.CreatePlan)
	}

	return &Server{router: router}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving on port until Shutdown is called.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Infof("HTTP server listening on :%s", port)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

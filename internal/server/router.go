package server

import (
	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/config"
	"sep-workflow/internal/handlers"
	"sep-workflow/internal/middleware"
	"sep-workflow/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "sep_session"

func NewRouter(cfg *config.Config, svc *service.Services) *gin.Engine {
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(), bizerror.ErrorHandling())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 12 * 60 * 60, Secure: !cfg.Development()})
	r.Use(sessions.Sessions(sessionName, store))

	employees := middleware.NewEmployeeCache(svc.Employees, middleware.EmployeeTTL)
	r.Use(middleware.InjectUser(employees))

	r.GET("/health", handlers.Health)

	public := r.Group("/")
	authed := r.Group("/", middleware.RequireAuth())

	handlers.RegisterAuthHandler(public, authed, svc.Employees, employees)
	handlers.RegisterIntakeHandler(public, authed, svc.Intake, middleware.RateLimit(cfg.Intake.RatePerMinute, cfg.Intake.Burst))
	handlers.RegisterHomeHandler(authed, svc.Dashboards)
	handlers.RegisterCustomerHandler(authed, svc.Customers)
	handlers.RegisterProjectHandler(authed, svc.Projects)
	handlers.RegisterTaskHandler(authed, svc.Tasks)
	handlers.RegisterFinancialRequestHandler(authed, svc.Financial)
	handlers.RegisterRecruitmentHandler(authed, svc.Recruitment)

	return r
}

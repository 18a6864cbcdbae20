package handlers

import (
	"net/http"

	"sep-workflow/internal/middleware"
	"sep-workflow/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type loginBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordBody struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type authHandler struct {
	employees service.EmployeeManagerTraits
	cache     *middleware.EmployeeCache
}

func RegisterAuthHandler(public, authed *gin.RouterGroup, m service.EmployeeManagerTraits, cache *middleware.EmployeeCache) {
	h := &authHandler{employees: m, cache: cache}

	public.POST("/login", h.handleLogin)
	public.POST("/logout", h.handleLogout)

	authed.GET("/me", h.handleMe)
	authed.POST("/me/password", h.handleChangePassword)
}

func (h *authHandler) handleLogin(c *gin.Context) {
	var body loginBody
	bindJSON(c, &body)

	employee, err := h.employees.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		panic(err)
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionEmployeeID, employee.ID)
	sess.Set(middleware.SessionRole, string(employee.Role))
	if err := sess.Save(); err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, employee)
}

func (h *authHandler) handleLogout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	if err := sess.Save(); err != nil {
		panic(err)
	}
	c.Status(http.StatusNoContent)
}

func (h *authHandler) handleMe(c *gin.Context) {
	c.JSON(http.StatusOK, currentEmployee(c))
}

func (h *authHandler) handleChangePassword(c *gin.Context) {
	employee := currentEmployee(c)
	var body changePasswordBody
	bindJSON(c, &body)

	if err := h.employees.ChangePassword(c.Request.Context(), employee, body.OldPassword, body.NewPassword); err != nil {
		panic(err)
	}
	h.cache.Forget(employee.ID)
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"sep-workflow/internal/service"

	"github.com/gin-gonic/gin"
)

type homeHandler struct {
	dashboards service.DashboardManagerTraits
}

func RegisterHomeHandler(g *gin.RouterGroup, m service.DashboardManagerTraits) {
	h := &homeHandler{dashboards: m}
	g.GET("/home", h.handleHome)
}

// handleHome returns the dashboard of the logged-in employee's role.
func (h *homeHandler) handleHome(c *gin.Context) {
	employee := currentEmployee(c)
	board, err := h.dashboards.Dashboard(c.Request.Context(), employee)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, gin.H{
		"employee":  employee,
		"role_name": employee.Role.Name(),
		"dashboard": board,
	})
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

package handlers

import (
	"net/http"

	"sep-workflow/internal/service"
	"sep-workflow/internal/workflow"

	"github.com/gin-gonic/gin"
)

type taskHandler struct {
	tasks service.TaskManagerTraits
}

func RegisterTaskHandler(g *gin.RouterGroup, m service.TaskManagerTraits) {
	h := &taskHandler{tasks: m}

	g.GET("/tasks", h.handleMine)
	g.POST("/tasks/:id/complete", roles(workflow.ActionCompleteTask), h.handleComplete)
	g.GET("/projects/:id/teams", roles(workflow.ActionAssignTask), h.handleTeams)
	g.POST("/projects/:id/teams/:team_id/tasks", roles(workflow.ActionAssignTask), h.handleAssign)
	g.GET("/projects/:id/tasks/:task_id", h.handleDetail)
}

func (h *taskHandler) handleMine(c *gin.Context) {
	tasks, err := h.tasks.ListMyTasks(c.Request.Context(), currentEmployee(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *taskHandler) handleTeams(c *gin.Context) {
	teams, err := h.tasks.ManagedTeams(c.Request.Context(), currentEmployee(c), paramID(c, "id"))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, teams)
}

func (h *taskHandler) handleAssign(c *gin.Context) {
	sender := currentEmployee(c)
	var body service.TaskInput
	bindJSON(c, &body)
	body.ProjectID = paramID(c, "id")
	body.TeamID = paramID(c, "team_id")

	task, err := h.tasks.AssignTask(c.Request.Context(), sender, body)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, task)
}

func (h *taskHandler) handleDetail(c *gin.Context) {
	task, err := h.tasks.GetTask(c.Request.Context(), currentEmployee(c), paramID(c, "id"), paramID(c, "task_id"))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, task)
}

func (h *taskHandler) handleComplete(c *gin.Context) {
	task, err := h.tasks.CompleteTask(c.Request.Context(), currentEmployee(c), paramID(c, "id"))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, task)
}

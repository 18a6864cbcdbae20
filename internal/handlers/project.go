package handlers

import (
	"net/http"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/middleware"
	"sep-workflow/internal/service"
	"sep-workflow/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type saveProjectBody struct {
	Action string `json:"action"`
	service.ProjectInput
}

type financialFeedbackBody struct {
	Action   string `json:"action"`
	Feedback string `json:"feedback"`
}

type projectHandler struct {
	projects service.ProjectManagerTraits
}

func RegisterProjectHandler(g *gin.RouterGroup, m service.ProjectManagerTraits) {
	h := &projectHandler{projects: m}

	g.GET("/projects", h.handleList)
	g.GET("/projects/:id", h.handleDetail)

	g.POST("/requests/:id/project", roles(workflow.ActionSaveDraft, workflow.ActionPublish), h.handleSaveFromRawRequest)
	g.POST("/projects/:id/meeting", roles(workflow.ActionScheduleMeeting), h.handleScheduleMeeting)
	g.POST("/projects/:id/cs-review", roles(workflow.ActionCSApprove, workflow.ActionCSReject), h.handleCSReview)
	g.POST("/projects/:id/financial-feedback", roles(workflow.ActionFinSaveDraft, workflow.ActionFinPublish), h.handleFinancialFeedback)
	g.POST("/projects/:id/admin-review", roles(workflow.ActionAdminApprove, workflow.ActionAdminReject), h.handleAdminReview)
	g.POST("/projects/:id/complete", roles(workflow.ActionComplete), h.handleComplete)
}

// roles gates a route on the roles that hold any of the actions.
func roles(actions ...workflow.Action) gin.HandlerFunc {
	return middleware.RequireRole(workflow.RolesFor(actions...)...)
}

func (h *projectHandler) handleList(c *gin.Context) {
	filter := service.ProjectFilter{}
	if err := c.ShouldBindWith(&filter, binding.Query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	projects, err := h.projects.List(c.Request.Context(), filter)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, projects)
}

func (h *projectHandler) handleDetail(c *gin.Context) {
	project, err := h.projects.Get(c.Request.Context(), paramID(c, "id"))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) handleSaveFromRawRequest(c *gin.Context) {
	employee := currentEmployee(c)
	var body saveProjectBody
	bindJSON(c, &body)

	var action workflow.Action
	switch body.Action {
	case string(workflow.ActionSaveDraft):
		action = workflow.ActionSaveDraft
	case string(workflow.ActionPublish):
		action = workflow.ActionPublish
	default:
		panic(bizerror.Invalid("action", "must be save_draft or publish"))
	}

	project, err := h.projects.SaveFromRawRequest(c.Request.Context(), employee, paramID(c, "id"), body.ProjectInput, action)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) handleScheduleMeeting(c *gin.Context) {
	employee := currentEmployee(c)
	var body service.MeetingInput
	bindJSON(c, &body)

	project, err := h.projects.ScheduleMeeting(c.Request.Context(), employee, paramID(c, "id"), body)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) handleCSReview(c *gin.Context) {
	project, err := h.projects.ReviewByCustomerService(c.Request.Context(), currentEmployee(c), paramID(c, "id"), approveParam(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) handleFinancialFeedback(c *gin.Context) {
	employee := currentEmployee(c)
	var body financialFeedbackBody
	bindJSON(c, &body)

	var publish bool
	switch body.Action {
	case string(workflow.ActionSaveDraft):
	case string(workflow.ActionPublish):
		publish = true
	default:
		panic(bizerror.Invalid("action", "must be save_draft or publish"))
	}

	project, err := h.projects.SubmitFinancialFeedback(c.Request.Context(), employee, paramID(c, "id"), body.Feedback, publish)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) handleAdminReview(c *gin.Context) {
	project, err := h.projects.ReviewByAdministration(c.Request.Context(), currentEmployee(c), paramID(c, "id"), approveParam(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) handleComplete(c *gin.Context) {
	project, err := h.projects.Complete(c.Request.Context(), currentEmployee(c), paramID(c, "id"))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, project)
}

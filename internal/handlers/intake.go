package handlers

import (
	"net/http"

	"sep-workflow/internal/service"
	"sep-workflow/internal/workflow"

	"github.com/gin-gonic/gin"
)

type intakeHandler struct {
	intake service.IntakeManagerTraits
}

// RegisterIntakeHandler mounts the public submission route, throttled by limiter, and the
// customer service view of a submitted request.
func RegisterIntakeHandler(public, authed *gin.RouterGroup, m service.IntakeManagerTraits, limiter gin.HandlerFunc) {
	h := &intakeHandler{intake: m}

	public.POST("/requests", limiter, h.handleSubmit)
	authed.GET("/requests/:id", roles(workflow.ActionSaveDraft), h.handleDetail)
}

func (h *intakeHandler) handleSubmit(c *gin.Context) {
	var body service.RawRequestInput
	bindJSON(c, &body)

	request, err := h.intake.SubmitRawRequest(c.Request.Context(), body)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, request)
}

func (h *intakeHandler) handleDetail(c *gin.Context) {
	view, err := h.intake.GetRawRequest(c.Request.Context(), currentEmployee(c), paramID(c, "id"))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, view)
}

package handlers

import (
	"net/http"

	"sep-workflow/internal/service"
	"sep-workflow/internal/workflow"

	"github.com/gin-gonic/gin"
)

type financialRequestHandler struct {
	requests service.FinancialRequestManagerTraits
}

func RegisterFinancialRequestHandler(g *gin.RouterGroup, m service.FinancialRequestManagerTraits) {
	h := &financialRequestHandler{requests: m}

	g.POST("/projects/:id/financial-requests", roles(workflow.ActionCreateFinancialRequest), h.handleCreate)
	g.GET("/financial-requests", roles(workflow.ActionDecideFinancialRequest), h.handlePending)
	g.POST("/financial-requests/:id/decision", roles(workflow.ActionDecideFinancialRequest), h.handleDecision)
}

func (h *financialRequestHandler) handleCreate(c *gin.Context) {
	manager := currentEmployee(c)
	var body service.FinancialRequestInput
	bindJSON(c, &body)

	request, err := h.requests.CreateFinancialRequest(c.Request.Context(), manager, paramID(c, "id"), body)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, request)
}

func (h *financialRequestHandler) handlePending(c *gin.Context) {
	requests, err := h.requests.PendingFinancialRequests(c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, requests)
}

func (h *financialRequestHandler) handleDecision(c *gin.Context) {
	request, err := h.requests.DecideFinancialRequest(c.Request.Context(), currentEmployee(c), paramID(c, "id"), approveParam(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, request)
}

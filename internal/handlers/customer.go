package handlers

import (
	"net/http"

	"sep-workflow/internal/service"
	"sep-workflow/internal/workflow"

	"github.com/gin-gonic/gin"
)

type customerHandler struct {
	customers service.CustomerManagerTraits
}

func RegisterCustomerHandler(g *gin.RouterGroup, m service.CustomerManagerTraits) {
	h := &customerHandler{customers: m}

	gate := roles(workflow.ActionSaveDraft, workflow.ActionCSApprove)
	g.GET("/customers", gate, h.handleList)
	g.GET("/customers/:id", gate, h.handleDetail)
}

func (h *customerHandler) handleList(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, customers)
}

// handleDetail returns the customer with its projects, newest first.
func (h *customerHandler) handleDetail(c *gin.Context) {
	customer, err := h.customers.Get(c.Request.Context(), paramID(c, "id"))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, customer)
}

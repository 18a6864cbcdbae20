package handlers

import (
	"net/http"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/service"
	"sep-workflow/internal/workflow"

	"github.com/gin-gonic/gin"
)

type advanceBody struct {
	Action string `json:"action" binding:"required"`
}

type recruitmentHandler struct {
	posts service.RecruitmentManagerTraits
}

func RegisterRecruitmentHandler(g *gin.RouterGroup, m service.RecruitmentManagerTraits) {
	h := &recruitmentHandler{posts: m}

	g.POST("/recruitment-posts", roles(workflow.ActionCreateRecruitmentPost), h.handleCreate)
	g.GET("/recruitment-posts", roles(workflow.ActionStartCampaign), h.handleList)
	g.POST("/recruitment-posts/:id/advance", roles(workflow.ActionStartCampaign, workflow.ActionCompleteCampaign), h.handleAdvance)
}

func (h *recruitmentHandler) handleCreate(c *gin.Context) {
	manager := currentEmployee(c)
	var body service.RecruitmentPostInput
	bindJSON(c, &body)

	post, err := h.posts.CreateRecruitmentPost(c.Request.Context(), manager, body)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, post)
}

func (h *recruitmentHandler) handleList(c *gin.Context) {
	status := workflow.RecruitmentPending
	if raw := c.Query("status"); raw != "" {
		parsed, err := workflow.ParseRecruitmentStatus(raw)
		if err != nil {
			panic(err)
		}
		status = parsed
	}

	posts, err := h.posts.RecruitmentPostsByStatus(c.Request.Context(), status)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, posts)
}

func (h *recruitmentHandler) handleAdvance(c *gin.Context) {
	employee := currentEmployee(c)
	var body advanceBody
	bindJSON(c, &body)

	action := workflow.Action(body.Action)
	if action != workflow.ActionStartCampaign && action != workflow.ActionCompleteCampaign {
		panic(bizerror.Invalid("action", "must be start_campaign or complete_campaign"))
	}

	post, err := h.posts.AdvanceRecruitment(c.Request.Context(), employee, paramID(c, "id"), action)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, post)
}

package bizerror_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"sep-workflow/internal/bizerror"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func serve(handler gin.HandlerFunc) (int, string) {
	router := gin.New()
	router.Use(bizerror.ErrorHandling())
	router.POST("/", handler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	body, _ := io.ReadAll(w.Body)
	return w.Code, string(body)
}

var _ = Describe("ErrorHandling", func() {
	It("writes biz errors with their own status and code", func() {
		status, body := serve(func(c *gin.Context) {
			panic(bizerror.Invalid("amount", "must be positive"))
		})
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"common.validation_failed","message":"must be positive","data":{"field":"amount"}}`))
	})

	It("handles errors attached to the context", func() {
		status, body := serve(func(c *gin.Context) {
			_ = c.Error(bizerror.NotFound("project", 7))
		})
		Expect(status).To(Equal(http.StatusNotFound))
		Expect(body).To(MatchJSON(`{"code":"common.record_not_found","message":"project 7 not found"}`))
	})

	It("reports illegal transitions as bad requests", func() {
		status, body := serve(func(c *gin.Context) {
			panic(&bizerror.IllegalTransitionError{Entity: "project", ID: 3, From: "cs_approved", Action: "cs_reject"})
		})
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"workflow.illegal_transition",
			"message":"project 3: action \"cs_reject\" is not allowed from status \"cs_approved\"",
			"data":{"from":"cs_approved","action":"cs_reject"}}`))
	})

	It("reports authorization failures as forbidden", func() {
		status, body := serve(func(c *gin.Context) {
			panic(&bizerror.AuthorizationError{Role: "CSE", Action: "cs_approve"})
		})
		Expect(status).To(Equal(http.StatusForbidden))
		Expect(body).To(MatchJSON(`{"code":"security.forbidden","message":"role CSE is not permitted to cs_approve"}`))
	})

	It("maps sentinels wrapped anywhere in the chain", func() {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{fmt.Errorf("login: %w", bizerror.ErrUnauthenticated), http.StatusUnauthorized, "common.unauthenticated"},
			{bizerror.ErrTooManyRequests, http.StatusTooManyRequests, "common.too_many_requests"},
			{fmt.Errorf("load: %w", gorm.ErrRecordNotFound), http.StatusNotFound, "common.record_not_found"},
			{&bizerror.ErrBadParam{Cause: errors.New("invalid id 'x'")}, http.StatusBadRequest, "common.bad_param"},
			{io.EOF, http.StatusBadRequest, "bad_request.body_not_found"},
		}
		for _, tc := range cases {
			err := tc.err
			status, body := serve(func(c *gin.Context) { panic(err) })
			Expect(status).To(Equal(tc.status), err.Error())
			Expect(body).To(ContainSubstring(`"code":"` + tc.code + `"`))
		}
	})

	It("reports anything else as an internal error without its details", func() {
		status, body := serve(func(c *gin.Context) {
			panic("boom")
		})
		Expect(status).To(Equal(http.StatusInternalServerError))
		Expect(body).To(MatchJSON(`{"code":"common.internal_server_error","message":"internal server error"}`))

		status, body = serve(func(c *gin.Context) {
			panic(fmt.Errorf("update project 3: %w", errors.New(`pq: relation "projects" does not exist`)))
		})
		Expect(status).To(Equal(http.StatusInternalServerError))
		Expect(body).ToNot(ContainSubstring("relation"))
		Expect(body).To(MatchJSON(`{"code":"common.internal_server_error","message":"internal server error"}`))
	})

	It("leaves successful responses alone", func() {
		status, body := serve(func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"ok":true}`))
	})
})

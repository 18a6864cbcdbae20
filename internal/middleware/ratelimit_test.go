package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/middleware"
	"sep-workflow/internal/testinfra"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func limited(perMinute, burst int) *gin.Engine {
	engine := gin.New()
	engine.Use(bizerror.ErrorHandling())
	engine.POST("/requests", middleware.RateLimit(perMinute, burst), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return engine
}

func submitFrom(engine *gin.Engine, addr string) (int, string) {
	req := httptest.NewRequest(http.MethodPost, "/requests", nil)
	req.RemoteAddr = addr
	code, body, _ := testinfra.ExecuteRequest(req, engine)
	return code, body
}

func statusFrom(engine *gin.Engine, addr string) int {
	code, _ := submitFrom(engine, addr)
	return code
}

var _ = Describe("RateLimit", func() {
	It("answers 429 once a client spends its burst", func() {
		engine := limited(1, 2)

		Expect(statusFrom(engine, "10.0.0.1:4000")).To(Equal(http.StatusCreated))
		Expect(statusFrom(engine, "10.0.0.1:4001")).To(Equal(http.StatusCreated))
		code, body := submitFrom(engine, "10.0.0.1:4002")
		Expect(code).To(Equal(http.StatusTooManyRequests))
		Expect(body).To(ContainSubstring("common.too_many_requests"))
	})

	It("keeps a separate budget per client address", func() {
		engine := limited(1, 1)

		Expect(statusFrom(engine, "10.0.0.1:4000")).To(Equal(http.StatusCreated))
		Expect(statusFrom(engine, "10.0.0.1:4000")).To(Equal(http.StatusTooManyRequests))
		Expect(statusFrom(engine, "10.0.0.2:4000")).To(Equal(http.StatusCreated))
	})

	It("is disabled by a zero rate", func() {
		engine := limited(0, 0)
		for i := 0; i < 20; i++ {
			Expect(statusFrom(engine, "10.0.0.1:4000")).To(Equal(http.StatusCreated))
		}
	})
})

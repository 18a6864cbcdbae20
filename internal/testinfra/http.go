package testinfra

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

func ExecuteRequest(req *http.Request, engine *gin.Engine) (int, string, http.Header) {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	bodyBytes, err := io.ReadAll(w.Body)
	if err != nil {
		panic(err)
	}
	return w.Code, string(bodyBytes), w.Header()
}

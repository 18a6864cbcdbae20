package bizerror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrorHandling converts panics and errors attached with c.Error into JSON error bodies.
func ErrorHandling() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handle(c)
		c.Next()
	}
}

func handle(c *gin.Context) {
	if ret := recover(); ret != nil {
		err, ok := ret.(error)
		if !ok {
			err = fmt.Errorf("%v", ret)
		}
		HandleError(c, err)
	} else if err := c.Errors.Last(); err != nil {
		HandleError(c, err)
	}
}

func HandleError(c *gin.Context, err error) {
	genericErr := err
	var ginErr *gin.Error
	if errors.As(err, &ginErr) {
		genericErr = ginErr.Err
	}

	status, body := translate(genericErr)
	entry := logrus.WithFields(logrus.Fields{
		"status": status,
		"code":   body.Code,
		"path":   c.Request.URL.Path,
	})
	if status >= http.StatusInternalServerError {
		entry.Error(genericErr)
	} else {
		entry.Warn(genericErr)
	}

	c.AbortWithStatusJSON(status, body)
}

func translate(err error) (int, *ErrorBody) {
	var bizErr BizError
	if errors.As(err, &bizErr) {
		respond := bizErr.Respond()
		return respond.Status, &ErrorBody{Code: respond.Code, Message: respond.Message, Data: respond.Data}
	}

	// bad request: io.EOF (no body)
	if errors.Is(err, io.EOF) {
		return http.StatusBadRequest, &ErrorBody{Code: "bad_request.body_not_found", Message: "body not found"}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return http.StatusBadRequest, &ErrorBody{Code: "bad_request.invalid_body_format", Message: "invalid body format", Data: syntaxErr.Error()}
	}
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, &ErrorBody{Code: "common.validation_failed", Message: "validation failed", Data: validationErr.Error()}
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, &ErrorBody{Code: "common.unauthenticated", Message: "unauthenticated"}
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, &ErrorBody{Code: "security.forbidden", Message: "access forbidden"}
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests, &ErrorBody{Code: "common.too_many_requests", Message: "too many requests"}
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, &ErrorBody{Code: "common.record_not_found", Message: "record not found"}
	case errors.Is(err, ErrIllegalTransition):
		return http.StatusBadRequest, &ErrorBody{Code: "workflow.illegal_transition", Message: err.Error()}
	}

	// the cause is logged by HandleError and never sent to clients
	return http.StatusInternalServerError, &ErrorBody{Code: "common.internal_server_error", Message: "internal server error"}
}

package handlers

import (
	"errors"
	"strconv"

	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/middleware"
	"sep-workflow/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Handlers panic with their errors; bizerror.ErrorHandling turns them into JSON bodies.

func currentEmployee(c *gin.Context) *models.Employee {
	employee := middleware.CurrentEmployee(c)
	if employee == nil {
		panic(bizerror.ErrUnauthenticated)
	}
	return employee
}

func paramID(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		panic(&bizerror.ErrBadParam{Cause: errors.New("invalid " + name + " '" + c.Param(name) + "'")})
	}
	return uint(id)
}

// approveParam reads the approve query flag. A missing flag is returned as nil so that the
// service reports the missing decision.
func approveParam(c *gin.Context) *bool {
	raw, ok := c.GetQuery("approve")
	if !ok {
		return nil
	}
	approve, err := strconv.ParseBool(raw)
	if err != nil {
		panic(bizerror.Invalid("approve", "must be a boolean, got %q", raw))
	}
	return &approve
}

func bindJSON(c *gin.Context, v interface{}) {
	if err := c.ShouldBindBodyWith(v, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
}

package middleware

import (
	"sep-workflow/internal/bizerror"
	"sep-workflow/internal/workflow"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SessionEmployeeID = "employee_id"
	SessionRole       = "role"
)

// RequireAuth rejects requests without a logged-in employee.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if _, ok := sess.Get(SessionEmployeeID).(uint); !ok || CurrentEmployee(c) == nil {
			bizerror.HandleError(c, bizerror.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}

// RequireRole is the route-level mirror of the capability table: it turns away roles
// that could never pass the service checks behind the route.
func RequireRole(roles ...workflow.Role) gin.HandlerFunc {
	roleSet := map[workflow.Role]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		employee := CurrentEmployee(c)
		if employee == nil {
			bizerror.HandleError(c, bizerror.ErrUnauthenticated)
			return
		}
		if _, ok := roleSet[employee.Role]; !ok {
			bizerror.HandleError(c, &bizerror.AuthorizationError{Role: string(employee.Role), Action: c.Request.Method + " " + c.FullPath()})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"context"
	"strconv"
	"time"

	"sep-workflow/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const KeyCurrentEmployee = "CurrentEmployee"

// EmployeeTTL bounds how long a role or password change can take to reach the session.
const EmployeeTTL = 30 * time.Second

type EmployeeFinder interface {
	Find(ctx context.Context, id uint) (*models.Employee, error)
}

// EmployeeCache keeps recently seen employees so that authenticated requests
// do not reload their identity on every call.
type EmployeeCache struct {
	finder EmployeeFinder
	cache  *cache.Cache
}

func NewEmployeeCache(finder EmployeeFinder, ttl time.Duration) *EmployeeCache {
	return &EmployeeCache{finder: finder, cache: cache.New(ttl, 2*ttl)}
}

func (ec *EmployeeCache) Get(ctx context.Context, id uint) (*models.Employee, error) {
	key := strconv.FormatUint(uint64(id), 10)
	if v, found := ec.cache.Get(key); found {
		if employee, ok := v.(*models.Employee); ok {
			return employee, nil
		}
	}
	employee, err := ec.finder.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	ec.cache.Set(key, employee, cache.DefaultExpiration)
	return employee, nil
}

func (ec *EmployeeCache) Forget(id uint) {
	ec.cache.Delete(strconv.FormatUint(uint64(id), 10))
}

// InjectUser loads the employee of the session, if any, into the gin context.
func InjectUser(employees *EmployeeCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if id, ok := sess.Get(SessionEmployeeID).(uint); ok && id > 0 {
			employee, err := employees.Get(c.Request.Context(), id)
			if err == nil {
				c.Set(KeyCurrentEmployee, employee)
			} else {
				logrus.WithField("employee_id", id).Warnf("session refers to unknown employee: %v", err)
			}
		}
		c.Next()
	}
}

func CurrentEmployee(c *gin.Context) *models.Employee {
	v, found := c.Get(KeyCurrentEmployee)
	if !found {
		return nil
	}
	employee, _ := v.(*models.Employee)
	return employee
}

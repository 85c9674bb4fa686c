package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberhub/barberhub-api/internal/authz"
	"github.com/barberhub/barberhub-api/internal/middleware"
)

// currentCaller reads the authenticated identity set by the auth
// middleware. Handlers pass it down explicitly; domain code never touches
// the gin context.
func currentCaller(c *gin.Context) (authz.Caller, bool) {
	idVal, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return authz.Caller{}, false
	}
	id, ok := idVal.(uint)
	if !ok {
		return authz.Caller{}, false
	}
	role, _ := c.Get(middleware.ContextUserRole)
	roleStr, _ := role.(string)
	return authz.Caller{ID: id, Role: roleStr}, true
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/minhtran/phimhub/pkg/constant"
	"github.com/minhtran/phimhub/pkg/response"
)

// AdminOnly rejects requests whose JWT claims do not carry the ADMIN role.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := c.Get(string(constant.CtxKeyUserRole))
			if role == nil {
				return response.Error(c, http.StatusUnauthorized, "unauthorized", "missing role information")
			}

			userRole, ok := role.(string)
			if !ok || userRole != "ADMIN" {
				return response.Error(c, http.StatusForbidden, "forbidden", "admin access required")
			}

			return next(c)
		}
	}
}

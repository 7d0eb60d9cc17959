package api

import (
	echo "github.com/labstack/echo/v5"
)

// callerIdentity resolves who is acting on a request from the auth
// proxy's identity headers. The value lands in durable records — run
// author, gate approver_id, cancellation reasons — so it must be stable
// per reviewer, not per session.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email
// (oauth2-proxy) > X-Remote-User (kube-rbac-proxy) > "api-client".
func callerIdentity(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.Request().Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}

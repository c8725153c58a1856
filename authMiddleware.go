package main

import (
	"net/http"
	"strings"

	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"github.com/gin-gonic/gin"
)

// authMiddleware requires a valid bearer token and stashes the caller's
// identity in the request context for the handlers and models below.
func authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			auth = c.GetHeader("token")
		}
		auth = strings.TrimPrefix(auth, "Bearer ")

		if auth == "" {
			respondError(c, http.StatusUnauthorized, "authorization token is required")
			c.Abort()
			return
		}

		validated, err := utils.JwtValidate(auth)
		if err != nil || !validated.Valid {
			respondError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := validated.Claims.(*utils.JwtCustomClaim)
		if !ok {
			respondError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		ctx := utils.SetTokenInContext(c.Request.Context(), auth)
		ctx = utils.SetUserIdInContext(ctx, claims.ID)
		ctx = utils.SetUserNameInContext(ctx, claims.UserName)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

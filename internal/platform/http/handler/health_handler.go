// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Health returns the /healthz handler. ping checks the backing store; a
// failing ping turns the endpoint into a 503 so orchestrators stop routing
// traffic to an instance that lost its database.
func Health(ping func(context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Never cache the health response.
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == "OPTIONS" {
			c.Status(204)
			return
		}

		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				if c.Request.Method == "HEAD" {
					c.Status(503)
				} else {
					c.JSON(503, gin.H{"status": "unavailable"})
				}
				return
			}
		}

		if c.Request.Method == "HEAD" {
			c.Status(200)
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	}
}

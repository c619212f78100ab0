package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports whether the API can serve quotes: Postgres down means no
// reads or writes at all, Redis down means PDF and email jobs will not be
// picked up. Each dependency is pinged with a shared deadline and reported
// by name so the deploy probe can tell them apart.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		deps := gin.H{}
		healthy := true

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			deps["postgres"] = "error"
			healthy = false
		} else {
			deps["postgres"] = "ok"
		}

		if rdb.Ping(ctx).Err() != nil {
			deps["redis"] = "error"
			healthy = false
		} else {
			deps["redis"] = "ok"
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"ok": healthy, "deps": deps})
	}
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthPingTimeout = 3 * time.Second

// Health pings postgres and redis. Any dependency down answers 503 so the
// storefront can show the loja as indisponível before a checkout fails.
// Never exposes connection details.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()

		postgres := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "indisponivel"
		}

		cache := "ok"
		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			cache = "indisponivel"
		}

		geral := "ok"
		status := http.StatusOK
		if postgres != "ok" || cache != "ok" {
			geral = "degradado"
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"status":   geral,
			"postgres": postgres,
			"redis":    cache,
		})
	}
}

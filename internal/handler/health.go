package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthTimeout = 3 * time.Second

// Health reports whether the two backing stores answer a ping. Postgres holds
// the pedidos/rentas data, Redis the notification queue and the folio preview
// counter; if either is down the process is not serving its purpose and the
// endpoint degrades to 503 so orchestration can restart or route around it.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		dbStatus := pingDB(ctx, db)
		redisStatus := "connected"
		if err := rdb.Ping(ctx).Err(); err != nil {
			redisStatus = "error"
		}

		code := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"ok":    code == http.StatusOK,
			"db":    dbStatus,
			"redis": redisStatus,
		})
	}
}

func pingDB(ctx context.Context, db *gorm.DB) string {
	sqlDB, err := db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		return "error"
	}
	return "connected"
}

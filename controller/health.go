package controller

import (
	"net/http"
	"time"

	"github.com/wardacoder/COMPAIR/service/factory"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const apiVersion = "1.0.0"

// Root 根路径探活
func Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Compair API is running!"})
}

// Health 基础健康检查
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   apiVersion,
	})
}

// HealthDB 数据库健康检查
func HealthDB(ctx *gin.Context) {
	if err := factory.GetServiceFactory().RepositoryFactory().Ping(ctx); err != nil {
		log.Errorf("Database health check failed: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

package router

import (
	"github.com/wardacoder/COMPAIR/controller"

	"github.com/gin-gonic/gin"
)

func addBasicRouter(engine *gin.Engine) {
	engine.GET("/", controller.Root)
	engine.GET("/health", controller.Health)
	engine.GET("/health/db", controller.HealthDB)
}

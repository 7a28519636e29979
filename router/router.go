package router

import (
	"sync"

	"github.com/wardacoder/COMPAIR/middleware"

	"github.com/gin-gonic/gin"
)

var once sync.Once
var instance *gin.Engine

func GetInstance() *gin.Engine {
	once.Do(func() {
		instance = gin.New()
		instance.Use(gin.Recovery())
		instance.Use(middleware.Logger)
		instance.Use(middleware.Cors())
		addBasicRouter(instance)
		addApiRouter(instance)
	})
	return instance
}

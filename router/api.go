package router

import (
	"github.com/wardacoder/COMPAIR/controller"

	"github.com/gin-gonic/gin"
)

func addApiRouter(engine *gin.Engine) {

	// 对比与追问
	engine.POST("/compare", controller.Compare)
	engine.POST("/ask-followup", controller.AskFollowUp)
	engine.GET("/followup-history/:comparison_id", controller.GetFollowUpHistory)

	// 历史
	engine.POST("/save-comparison", controller.SaveComparison)
	engine.GET("/history/:user_id", controller.GetHistory)
	engine.DELETE("/history/:user_id/:comparison_id", controller.DeleteHistoryItem)

	// 分享
	engine.POST("/share-comparison", controller.ShareComparison)
	engine.GET("/shared/:share_id", controller.GetSharedComparison)

	// 统计
	analytics := engine.Group("/analytics")
	{
		analytics.GET("/trending", controller.GetTrending)
		analytics.GET("/popular-items", controller.GetPopularItems)
		analytics.GET("/category-stats", controller.GetCategoryStats)
	}
}

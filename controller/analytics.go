package controller

import (
	"net/http"

	"github.com/wardacoder/COMPAIR/service/analytics"
	"github.com/wardacoder/COMPAIR/service/factory"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// GetTrending 最近一周的热门分享
func GetTrending(ctx *gin.Context) {
	res, serviceErr := factory.GetServiceFactory().AnalyticsService().Trending(ctx)
	if serviceErr != nil {
		log.Errorf("GetTrending error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// GetPopularItems 被对比次数最多的条目
func GetPopularItems(ctx *gin.Context) {
	res, serviceErr := factory.GetServiceFactory().AnalyticsService().PopularItems(ctx)
	if serviceErr != nil {
		log.Errorf("GetPopularItems error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// GetCategoryStats 类目统计，days 查询参数控制统计窗口
func GetCategoryStats(ctx *gin.Context) {
	days := cast.ToInt(ctx.DefaultQuery("days", cast.ToString(analytics.DefaultCategoryStatsDays)))

	res, serviceErr := factory.GetServiceFactory().AnalyticsService().CategoryStats(ctx, days)
	if serviceErr != nil {
		log.Errorf("GetCategoryStats error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

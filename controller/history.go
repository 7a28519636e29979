package controller

import (
	"net/http"

	"github.com/wardacoder/COMPAIR/constant"
	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/service/factory"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// SaveComparison 保存对比到用户历史
func SaveComparison(ctx *gin.Context) {
	var req model.SaveComparisonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, serviceErr := factory.GetServiceFactory().HistoryService().Save(ctx, &req)
	if serviceErr != nil {
		log.Errorf("SaveComparison error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// GetHistory 查询用户历史，支持 limit/offset/category 查询参数
func GetHistory(ctx *gin.Context) {
	condition := &model.GetComparisonsCondition{
		UserID: ctx.Param("user_id"),
		Pager: &model.Pager{
			Limit:  cast.ToInt(ctx.DefaultQuery("limit", cast.ToString(constant.DefaultPageLimit))),
			Offset: cast.ToInt(ctx.DefaultQuery("offset", "0")),
		},
	}
	if category := ctx.Query("category"); category != "" {
		condition.Category = &category
	}

	res, serviceErr := factory.GetServiceFactory().HistoryService().List(ctx, condition)
	if serviceErr != nil {
		log.Errorf("GetHistory error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// DeleteHistoryItem 删除用户的一条历史记录
func DeleteHistoryItem(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	comparisonID := ctx.Param("comparison_id")

	if serviceErr := factory.GetServiceFactory().HistoryService().Delete(ctx, userID, comparisonID); serviceErr != nil {
		log.Errorf("DeleteHistoryItem error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Comparison deleted successfully"})
}

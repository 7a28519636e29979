package controller

import (
	"net/http"

	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/service/factory"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ShareComparison 创建分享链接
func ShareComparison(ctx *gin.Context) {
	var req model.ShareComparisonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, serviceErr := factory.GetServiceFactory().ShareService().Share(ctx, &req)
	if serviceErr != nil {
		log.Errorf("ShareComparison error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// GetSharedComparison 公开读取分享，每次读取浏览计数加一
func GetSharedComparison(ctx *gin.Context) {
	shareID := ctx.Param("share_id")

	res, serviceErr := factory.GetServiceFactory().ShareService().Get(ctx, shareID)
	if serviceErr != nil {
		log.Errorf("GetSharedComparison error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

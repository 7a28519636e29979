package controller

import (
	"net/http"

	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/service/factory"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AskFollowUp 追问接口
func AskFollowUp(ctx *gin.Context) {
	var req model.FollowUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, serviceErr := factory.GetServiceFactory().CompareService().AskFollowUp(ctx, &req)
	if serviceErr != nil {
		log.Errorf("AskFollowUp error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// GetFollowUpHistory 会话历史接口
func GetFollowUpHistory(ctx *gin.Context) {
	comparisonID := ctx.Param("comparison_id")

	res, serviceErr := factory.GetServiceFactory().CompareService().FollowUpHistory(ctx, comparisonID)
	if serviceErr != nil {
		log.Errorf("GetFollowUpHistory error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

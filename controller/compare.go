package controller

import (
	"net/http"

	"github.com/wardacoder/COMPAIR/model"
	"github.com/wardacoder/COMPAIR/service/factory"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Compare 对比接口。校验不过和模型拒绝都走 200 加 message，
// 前端据此区分"输入建议"和传输层失败。
func Compare(ctx *gin.Context) {
	var req model.CompareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, rejection, serviceErr := factory.GetServiceFactory().CompareService().Compare(ctx, &req)
	if serviceErr != nil {
		log.Errorf("Compare error: %v", serviceErr)
		abortWithServiceError(ctx, serviceErr)
		return
	}
	if rejection != nil {
		ctx.JSON(http.StatusOK, rejection)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

package controller

import (
	"net/http"

	"github.com/wardacoder/COMPAIR/model"

	"github.com/gin-gonic/gin"
)

// abortWithServiceError 服务层错误码到 HTTP 状态码的映射，
// 响应体沿用 {"detail": ...}，前端按这个键取错误文案。
func abortWithServiceError(ctx *gin.Context, serviceErr *model.Error) {
	status := http.StatusInternalServerError
	switch serviceErr.Code {
	case model.ErrorParams:
		status = http.StatusBadRequest
	case model.ErrorComparisonNotFound, model.ErrorShareNotFound, model.ErrorHistoryNotFound:
		status = http.StatusNotFound
	case model.ErrorLLMUnavailable:
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, gin.H{"detail": serviceErr.Message})
}

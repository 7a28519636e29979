package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/wardacoder/COMPAIR/config"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func Logger(ctx *gin.Context) {
	start := time.Now().UTC()
	path := ctx.Request.URL.Path

	logRequestBody := config.GetInstance().GetBool(config.ApplicationLogRequest)
	request := ""
	if logRequestBody && ctx.Request.Body != nil {
		bodyBytes, _ := io.ReadAll(ctx.Request.Body)
		body, err := readBody(io.NopCloser(bytes.NewBuffer(bodyBytes)))
		if err != nil {
			logrus.Errorf("read body bytes err:%v", err)
			return
		}
		request = body
		ctx.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	ip := ctx.ClientIP()

	ctx.Next()

	latency := time.Now().UTC().Sub(start)
	if logRequestBody {
		logrus.Infof("%s| %s| %s| %s| %v |request: %s", ctx.Request.Method, latency, ip, path, ctx.Writer.Status(), request)
	} else {
		logrus.Infof("%s| %s| %s| %s| %v", ctx.Request.Method, latency, ip, path, ctx.Writer.Status())
	}
}

func readBody(reader io.Reader) (string, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", errors.WithStack(err)
	}
	return buf.String(), nil
}

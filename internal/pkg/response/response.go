package response

import (
	"CreatorHub/internal/api/dto"
	"CreatorHub/internal/service"
	stdjson "encoding/json"
	"errors"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装，HTTP 状态码与业务码保持一致
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(businessCode, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	// gin 的 JSON/Query 绑定失败统一按参数错误处理
	var unmarshalTypeError *json.UnmarshalTypeError
	var stdUnmarshalTypeError *stdjson.UnmarshalTypeError
	var syntaxError *stdjson.SyntaxError
	var numError *strconv.NumError
	if errors.As(err, &unmarshalTypeError) ||
		errors.As(err, &stdUnmarshalTypeError) ||
		errors.As(err, &syntaxError) ||
		errors.As(err, &numError) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		code = InternalServerError
		log.Error("Error", "err", err)
	}
	Fail(c, code, err.Error())
}

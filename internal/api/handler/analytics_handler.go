package handler

import (
	"CreatorHub/internal/api/dto"
	"CreatorHub/internal/pkg/response"
	"CreatorHub/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

func (s *AnalyticsHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	var query dto.AnalyticsQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	analytics, err := s.analyticsSvc.Get(c.Request.Context(), userID, query.Period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analytics)
}

func (s *AnalyticsHandler) Upload(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.AnalyticsUploadDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	analytics, err := s.analyticsSvc.Upload(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analytics)
}

func (s *AnalyticsHandler) GenerateSample(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.GenerateSampleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	analytics, err := s.analyticsSvc.GenerateSample(c.Request.Context(), userID, req.Period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analytics)
}

// Export 生成报告并以附件形式返回，不走统一响应包装
func (s *AnalyticsHandler) Export(c *gin.Context) {
	var query dto.AnalyticsExportQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	// 登录态优先，匿名场景由查询参数指定
	userID := c.GetString("user_id")
	if userID == "" {
		userID = query.UserID
	}

	report, err := s.analyticsSvc.Export(c.Request.Context(), userID, query.Period)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("analytics-report-%s.json", report.Period)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, report)
}

func (s *AnalyticsHandler) Delete(c *gin.Context) {
	var query dto.AnalyticsDeleteQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		userID = query.UserID
	}

	if err := s.analyticsSvc.Delete(c.Request.Context(), userID, query.Period); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

package api

import (
	"CreatorHub/internal/api/middleware"
	"CreatorHub/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		contentGroup := apiGroup.Group("/content")
		{
			// 领域列表无需登录
			contentGroup.GET("/meta/niches", group.ContentHandler.Niches)

			authGroup := contentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/generate", group.ContentHandler.Generate)
				authGroup.GET("/bank", group.ContentHandler.GetBank)
				authGroup.GET("/:content_id", group.ContentHandler.GetByID)
				authGroup.DELETE("/:content_id", group.ContentHandler.Delete)
			}
		}

		analyticsGroup := apiGroup.Group("/analytics")
		{
			// 导出与删除支持匿名访问，用户标识走查询参数
			optGroup := analyticsGroup.Group("")
			optGroup.Use(middleware.AuthOptionalMiddleware())
			{
				optGroup.GET("/export", group.AnalyticsHandler.Export)
				optGroup.DELETE("", group.AnalyticsHandler.Delete)
			}

			authGroup := analyticsGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("", group.AnalyticsHandler.Get)
				authGroup.POST("/upload", group.AnalyticsHandler.Upload)
				authGroup.POST("/generate-sample", group.AnalyticsHandler.GenerateSample)
			}
		}
	}

	return r
}

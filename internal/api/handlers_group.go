package api

import "CreatorHub/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ContentHandler   *handler.ContentHandler
	AnalyticsHandler *handler.AnalyticsHandler
}

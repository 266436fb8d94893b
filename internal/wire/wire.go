package wire

import (
	"CreatorHub/internal/api"
	"CreatorHub/internal/api/config"
	"CreatorHub/internal/api/handler"
	"CreatorHub/internal/job"
	"CreatorHub/internal/pkg/cron"
	"CreatorHub/internal/pkg/mongo"
	"CreatorHub/internal/service"

	"github.com/gin-gonic/gin"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

func BuildApplication(db *mongodrv.Database, cfg *config.Config) (*ApplicationContainer, error) {
	contentRepo := mongo.NewContentRepo(db)
	analyticsRepo := mongo.NewAnalyticsRepo(db)

	contentService := service.NewContentService(contentRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	handlers := &api.HandlersGroup{
		ContentHandler:   handler.NewContentHandler(contentService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewBestTimeJob(analyticsRepo))

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}

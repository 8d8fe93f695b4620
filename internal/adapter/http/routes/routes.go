package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "jobdesk/docs" // This will be auto-generated
	"jobdesk/internal/adapter/http/handlers"
	repository2 "jobdesk/internal/adapter/persistence/repository"
	"jobdesk/internal/infrastructure/database"
	"jobdesk/internal/infrastructure/pubsub"
	"jobdesk/internal/infrastructure/scheduler"
	"jobdesk/internal/usecase"
	"jobdesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	invitationRepo := repository2.NewInvitationDynamoRepository(ddb)

	var feed interfaces.IChangeFeed
	redisFeed, err := pubsub.NewRedisChangeFeed(redisURL())
	if err != nil {
		log.Printf("Change feed not configured, running without live sync: %v", err)
	} else {
		feed = redisFeed
	}

	aggregator := usecase.NewEstimateAggregator(jobRepo, estimateRepo, feed)
	jobUseCase := usecase.NewJobUseCase(jobRepo, estimateRepo, invoiceRepo, feed)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, aggregator, feed)
	invoiceSynthesizer := usecase.NewInvoiceSynthesizer(jobRepo, estimateRepo, invoiceRepo, feed)
	invitationLifecycle := usecase.NewInvitationLifecycle(jobRepo, invitationRepo, feed)
	laborAggregator := usecase.NewLaborHoursAggregator(jobRepo, invitationRepo, feed)

	var syncScheduler *scheduler.SyncScheduler
	if feed != nil {
		syncManager := usecase.NewSharedJobSyncManager(jobRepo, feed)
		syncScheduler = scheduler.New(jobRepo, syncManager, reconcileIntervalMinutes())
		if err := syncScheduler.Start(context.Background()); err != nil {
			log.Printf("Sync scheduler failed to start: %v", err)
		}
	}

	jobHandler := handlers.NewJobHandler(jobUseCase, laborAggregator)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceSynthesizer)
	invitationHandler := handlers.NewInvitationHandler(invitationLifecycle)

	v1 := router.Group("/v1")
	if syncScheduler != nil {
		v1.Use(trackAccounts(syncScheduler))
	}
	addPingRoutes(v1)
	addJobdeskRoutes(v1, jobHandler, estimateHandler, invoiceHandler, invitationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// trackAccounts feeds acting accounts into the reconciliation scope so their
// shared jobs get live subscriptions restored after restarts.
func trackAccounts(s *scheduler.SyncScheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Track(c.GetHeader(handlers.AccountHeader))
		c.Next()
	}
}

func redisURL() string {
	if v := os.Getenv("REDIS_URL"); v != "" {
		return v
	}
	return "redis://localhost:6379"
}

func reconcileIntervalMinutes() int {
	if v, err := strconv.Atoi(os.Getenv("SYNC_RECONCILE_INTERVAL_MINUTES")); err == nil && v > 0 {
		return v
	}
	return 1
}

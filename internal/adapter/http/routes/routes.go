package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "estimate_editor/docs"
	"estimate_editor/internal/adapter/http/handlers"
	"estimate_editor/internal/adapter/persistence/repository"
	"estimate_editor/internal/config"
	"estimate_editor/internal/infrastructure/backup"
	"estimate_editor/internal/infrastructure/database"
	"estimate_editor/internal/infrastructure/jobs"
	"estimate_editor/internal/infrastructure/lineservice"
	"estimate_editor/internal/infrastructure/scheduler"
	"estimate_editor/internal/usecase"
	"estimate_editor/internal/usecase/editing"
	"estimate_editor/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// app is the wired service.
type app struct {
	router  *gin.Engine
	manager *editing.Manager
	pruner  *cron.Cron
}

// Run will start the server
func Run() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := build(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("[routes][server] listening port=%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[routes][server] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[routes][server] shutdown err=%v", err)
	}
	a.close(shutdownCtx)
}

// close flushes the active editing session and stops background jobs.
func (a *app) close(ctx context.Context) {
	if err := a.manager.Close(ctx, editing.CloseFlush); err != nil && !errors.Is(err, editing.ErrNoActiveSession) {
		log.Printf("[routes][server] session close err=%v", err)
	}
	if a.pruner != nil {
		<-a.pruner.Stop().Done()
	}
}

func build(ctx context.Context, cfg *config.Config) (*app, error) {
	estimateRepo, lineRepo, err := connectStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, lineRepo, cfg.DefaultRates())
	lineUseCase := usecase.NewLineUseCase(lineRepo, estimateRepo, cfg.LineService.MaxBulkItems)

	// Sessions talk to the line service over HTTP when one is configured, else in-process.
	var lineService interfaces.ILineService = lineUseCase
	if cfg.LineService.URL != "" {
		lineService = lineservice.NewHTTPClient(cfg.LineService.URL,
			lineservice.WithRateLimit(cfg.LineService.RequestsPerSecond, cfg.LineService.Burst))
		log.Printf("[routes][wiring] remote line service url=%s", cfg.LineService.URL)
	}

	backups := backup.NewDiskStore(cfg.Backup.Dir, cfg.Backup.Retention)
	pruner, err := jobs.StartBackupPrune(backups, cfg.Backup.PruneSchedule)
	if err != nil {
		return nil, err
	}

	manager := editing.NewManager(cfg.Editing(), editing.Dependencies{
		Lines:     lineService,
		Estimates: estimateUseCase,
		Backups:   backups,
		Scheduler: scheduler.NewReal(),
		NewID:     uuid.NewString,
	})

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, handlers.NewEstimateHandler(estimateUseCase))
	addLineRoutes(v1, handlers.NewLineHandler(lineUseCase))
	addSessionRoutes(v1, handlers.NewSessionHandler(manager))

	return &app{router: router, manager: manager, pruner: pruner}, nil
}

func connectStores(ctx context.Context, cfg *config.Config) (interfaces.IEstimateRepository, interfaces.IEstimateLineRepository, error) {
	switch cfg.LineStore.Driver {
	case config.LineStoreSQLite:
		db, err := database.ConnectSQLite(cfg.LineStore.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.AutoMigrate(db); err != nil {
			return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		log.Printf("[routes][wiring] sqlite store path=%s", cfg.LineStore.SQLitePath)
		return repository.NewEstimateGormRepository(db), repository.NewEstimateLineGormRepository(db), nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		if database.DynamoDBEndpoint() != "" {
			if err := repository.EnsureDynamoTables(ctx, ddb); err != nil {
				return nil, nil, err
			}
		}
		log.Printf("[routes][wiring] dynamodb store")
		return repository.NewEstimateDynamoRepository(ddb), repository.NewEstimateLineDynamoRepository(ddb), nil
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"member-events-api/config"
	"member-events-api/internal/database"
	"member-events-api/internal/handler"
	"member-events-api/internal/queue"
	"member-events-api/internal/repository"
	"member-events-api/internal/service"
	"member-events-api/internal/worker"
	"member-events-api/pkg/logger"
	"member-events-api/pkg/password"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	changeQueueBufferSize = 1000
	shutdownTimeout       = 10 * time.Second
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		log.Printf("Unknown LOG_LEVEL %q, keeping info", cfg.Log.Level)
	}
	defer logger.L.Sync()
	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal("Failed to apply schema", zap.Error(err))
	}

	// 未啟用 Redis 時使用單機版隊列
	var changes queue.ChangeQueue
	if !cfg.Redis.Enabled {
		changes = queue.NewChangeQueue(changeQueueBufferSize)
	} else {
		rdb, err := database.InitRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		defer rdb.Close()

		changes, err = queue.NewRedisStreamChangeQueue(rdb, "", nil)
		if err != nil {
			log.Fatal("Failed to initialize change stream", zap.Error(err))
		}
	}

	hasher, err := password.NewHasher(cfg.Security.Salt)
	if err != nil {
		log.Fatal("Failed to initialize password hasher", zap.Error(err))
	}

	departmentRepo := repository.NewDepartmentRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	eventTypeRepo := repository.NewEventTypeRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	memberRepo := repository.NewMemberRepository(pool)
	changeLogRepo := repository.NewChangeLogRepository(pool)

	changeWorker := worker.NewChangeWorker(changeLogRepo, changes)
	if err := changeWorker.Start(ctx); err != nil {
		log.Fatal("Failed to start change worker", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(&cfg.Server,
		handler.NewDepartmentHandler(service.NewDepartmentService(departmentRepo, changes)),
		handler.NewRoleHandler(service.NewRoleService(roleRepo, changes)),
		handler.NewEventTypeHandler(service.NewEventTypeService(eventTypeRepo, changes)),
		handler.NewEventHandler(service.NewEventService(eventRepo, changes)),
		handler.NewMemberHandler(service.NewMemberService(memberRepo, changes), hasher),
		handler.NewChangeLogHandler(service.NewChangeLogService(changeLogRepo)),
	)

	srv := &http.Server{Addr: cfg.Addr(), Handler: router}
	go func() {
		log.Info("Server listening", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	select {
	case <-changeWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("Change worker did not stop in time")
	}
}

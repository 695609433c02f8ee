package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/report-mapping-api/internal/config"
	"github.com/report-mapping-api/internal/database"
	"github.com/report-mapping-api/internal/handler"
	"github.com/report-mapping-api/internal/repository"
	"github.com/report-mapping-api/internal/service"
)

func main() {
	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключение к БД
	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := database.Migrate(sqlDB, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	tx := repository.NewTransactor(db)
	reportRepo := repository.NewReportRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	mappingRepo := repository.NewMappingRepository(db)
	empMappingRepo := repository.NewEmployeeMappingRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	// Инициализация сервисов
	reportService := service.NewReportService(reportRepo, empRepo, mappingRepo)
	empService := service.NewEmployeeService(empRepo, reportRepo, empMappingRepo)
	mappingService := service.NewMappingService(tx, reportRepo, empRepo, mappingRepo, empMappingRepo, cfg.Mapping.MinReports)
	uploadService := service.NewUploadService(uploadRepo)

	// Настройка роутера
	router := handler.NewRouter(handler.Handlers{
		Reports:   handler.NewReportHandler(reportService, logger),
		Employees: handler.NewEmployeeHandler(empService, logger),
		Mappings:  handler.NewMappingHandler(mappingService, logger),
		Uploads:   handler.NewUploadHandler(uploadService, logger),
	}, cfg.Server.AllowedOrigins, logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
		slog.Int("mapping_min_reports", cfg.Mapping.MinReports),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}

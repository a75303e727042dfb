package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sensorhub/config"
	"sensorhub/database"
	"sensorhub/logger"
	"sensorhub/mirror"
	"sensorhub/mqttbridge"
	"sensorhub/routes"
	"sensorhub/scheduler"
	"sensorhub/services"
)

// shutdownTimeout 진행 중인 요청 완료 대기 시간
const shutdownTimeout = 15 * time.Second

// @title Sensorhub API
// @version 1.0
// @description IoT 텔레메트리 수집 서버
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey APIKeyAuth
// @in header
// @name X-API-KEY
// @description 디바이스 API 키

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	printConfig := flag.Bool("print-config", false, "print the effective configuration and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *printConfig {
		out, err := cfg.YAML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render config: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	// 로거 초기화
	logConfig := logger.Config{
		Level:      logger.ParseLevel(cfg.Logging.Level),
		LogDir:     cfg.Logging.Dir,
		MaxSize:    int64(cfg.Logging.MaxSizeMB) * 1024 * 1024,
		MaxAge:     cfg.Logging.MaxAgeDays,
		UseColor:   cfg.Logging.Color,
		ShowCaller: cfg.Logging.ShowCaller,
	}
	if err := logger.Initialize(logConfig); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}

	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Info("🚀 Sensorhub Server Starting")
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	// 데이터베이스 초기화
	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 서비스 계층 초기화
	svc := services.New(services.NewDatabaseExecutor(db))

	// 시계열 미러 (선택)
	var m mirror.Mirror = mirror.Noop{}
	if cfg.InfluxDB.Enabled {
		influx, err := mirror.NewInflux(cfg.InfluxDB)
		if err != nil {
			logger.Warn("InfluxDB mirror disabled: %v", err)
		} else {
			m = influx
		}
	}

	// MQTT 수집 브리지 (선택)
	var bridge *mqttbridge.Bridge
	if cfg.MQTT.Enabled {
		bridge = mqttbridge.New(cfg.MQTT, svc, m)
		if err := bridge.Start(); err != nil {
			logger.Warn("MQTT bridge disabled: %v", err)
			bridge = nil
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 스케줄러 시작
	if cfg.Scheduler.Enabled {
		scheduler.StartScheduler(ctx, svc.Stats, config.Timeout(cfg.Scheduler.StatsInterval))
	}

	// 서버 설정
	server := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: routes.New(svc, routes.Options{
			MaxUploadBytes: cfg.Server.MaxUploadBytes(),
			CORSOrigins:    cfg.Server.CORSOrigins,
			Mirror:         m,
		}),
		ReadTimeout:  config.Timeout(cfg.Server.ReadTimeout),
		WriteTimeout: config.Timeout(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Timeout(cfg.Server.IdleTimeout),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening on http://%s", server.Addr)
		logger.Info("Swagger UI: http://%s/swagger/index.html", server.Addr)
		logger.Info("Database: %s", cfg.Database.Driver)
		logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful shutdown
	select {
	case <-ctx.Done():
		logger.Warn("Received shutdown signal")
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error: %v", err)
	}
	if bridge != nil {
		bridge.Close()
	}
	if err := m.Close(); err != nil {
		logger.Error("Mirror close error: %v", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("Database close error: %v", err)
	}
	logger.Info("Server stopped")
}

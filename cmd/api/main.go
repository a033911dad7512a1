package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fashionstore/internal/config"
	"fashionstore/internal/handler"
	"fashionstore/internal/infra/cache"
	"fashionstore/internal/infra/db"
	"fashionstore/internal/infra/events"
	infraRepo "fashionstore/internal/infra/repository"
	"fashionstore/internal/logger"
	"fashionstore/internal/metrics"
	"fashionstore/internal/middleware"
	"fashionstore/internal/server"
	"fashionstore/internal/usecase"
	auth "fashionstore/internal/usecase/auth_usecase"
	"fashionstore/internal/validator"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// .envは任意
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("config error", zap.Error(err))
	}

	logger.Init(cfg.GoEnv)
	defer logger.Sync()
	log := logger.L()

	//DB接続
	gormDB, err := db.Connect(cfg.DSN())
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	//既定ロールが無ければ起動しない
	roleRepo := infraRepo.NewRoleGormRepository(gormDB)
	if err := auth.CheckDefaultRole(context.Background(), roleRepo, cfg.DefaultRoleID); err != nil {
		log.Fatal("default role check failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//キャッシュ（REDIS_ADDRが無ければ使わない）
	var catalogCache usecase.Cache
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
		if err != nil {
			log.Fatal("redis connect failed", zap.Error(err))
		}
		defer rc.Close()
		catalogCache = rc
	}

	//注文イベント（KAFKA_BROKERSが無ければ送らない）
	var publisher usecase.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.OrderEventsTopic)
		defer kp.Close()
		publisher = kp
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	//usecaseに渡す部品
	clock := usecase.SystemClock{}
	credValidator := validator.NewAuthValidator(userRepo)
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer, err := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, time.Duration(cfg.JWTExpiresHour)*time.Hour)
	if err != nil {
		log.Fatal("jwt issuer", zap.Error(err))
	}

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, credValidator, hasher, auth.SystemClock{}, cfg.DefaultRoleID)
	loginUC := auth.NewLoginUsecase(userRepo, credValidator, verifier, issuer, auth.SystemClock{})
	productUC := usecase.NewProductUsecase(productRepo, catalogCache, cfg.CatalogCacheTTL)
	checkoutUC := usecase.NewCheckoutUsecase(txm, catalogCache, publisher, m, clock)
	orderUC := usecase.NewOrderUsecase(txm)

	//Handler生成
	e := server.New(cfg, m, middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst), server.Handlers{
		Auth:     handler.NewAuthHandler(registerUC, loginUC),
		Products: handler.NewProductHandler(productUC),
		Orders:   handler.NewOrderHandler(checkoutUC, orderUC),
	})

	//Server起動
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.Port
		log.Info("server started", zap.String("addr", addr), zap.String("env", cfg.GoEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

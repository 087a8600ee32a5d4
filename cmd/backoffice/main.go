package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/backoffice/internal/api/handler"
	"github.com/RoyceAzure/lab/backoffice/internal/api/router"
	"github.com/RoyceAzure/lab/backoffice/internal/config"
	"github.com/RoyceAzure/lab/backoffice/internal/infra/producer"
	"github.com/RoyceAzure/lab/backoffice/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/backoffice/internal/infra/repository/redis_decorator"
	"github.com/RoyceAzure/lab/backoffice/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/backoffice/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	cf := config.GetConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "backoffice").Logger()

	conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
	if err != nil {
		log.Fatal(err)
	}

	dbDao := db.NewDbDao(conn)
	if err := dbDao.InitMigrate(); err != nil {
		log.Fatal(err)
	}

	// 商品倉儲，有設定redis時包上cache aside
	var productRepo db.IProductRepository = db.NewProductRepo(dbDao)
	if cf.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cf.RedisAddr})
		cacheRepo := redis_repo.NewProductCacheRepo(redisClient, 10*time.Minute)
		productRepo = redis_decorator.NewCacheAsideProductRepo(productRepo, cacheRepo)
	}
	orderRepo := db.NewOrderRepo(dbDao)

	// 訂單事件，有設定kafka broker才發
	var orderEvents producer.IOrderEventProducer
	if brokers := cf.Brokers(); len(brokers) > 0 {
		orderEvents = producer.NewOrderEventProducer(brokers, cf.OrderEventTopic)
	}

	catalogService := service.NewCatalogService(productRepo)
	orderService := service.NewOrderService(orderRepo, catalogService, orderEvents)

	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)

	r := router.SetupRouter(productHandler, orderHandler, &logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if orderEvents != nil {
			if err := orderEvents.Close(); err != nil {
				log.Printf("Producer shutdown error: %v", err)
			}
		}

		shutDownCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDownCompleted
	log.Printf("closed completed")
}

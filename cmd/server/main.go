package main

import (
	"context"
	"log"
	"net/http"

	_ "github.com/jonmaso-hash/111-backend/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"github.com/jonmaso-hash/111-backend/internal/cache"
	"github.com/jonmaso-hash/111-backend/internal/config"
	"github.com/jonmaso-hash/111-backend/internal/db"
	"github.com/jonmaso-hash/111-backend/internal/handler"
	"github.com/jonmaso-hash/111-backend/internal/model"
	"github.com/jonmaso-hash/111-backend/internal/repository"
	"github.com/jonmaso-hash/111-backend/internal/router"
	"github.com/jonmaso-hash/111-backend/internal/service"
)

// @title Budget Tracker API
// @version 1.0
// @description Personal budget-tracking backend: users and their expenses over HTTP/JSON.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.Open(cfg.DBDriver, cfg.MySQLDSN, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Schema setup must complete before the listener accepts traffic.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Expense{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("redis unavailable (%v), continuing without cache", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	expenseService := service.NewExpenseService(expenseRepo, userRepo, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	expenseHandler := handler.NewExpenseHandler(expenseService)

	// Register routes
	router.Register(e, userHandler, expenseHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

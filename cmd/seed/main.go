package main

import (
	"context"
	"log"

	"github.com/jonmaso-hash/111-backend/internal/config"
	"github.com/jonmaso-hash/111-backend/internal/db"
	"github.com/jonmaso-hash/111-backend/internal/model"
	"github.com/jonmaso-hash/111-backend/internal/repository"
)

func strptr(s string) *string { return &s }

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.MySQLDSN, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Expense{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)

	users := []model.User{
		{Name: "Ann Demo", Email: "ann@example.com"},
		{Name: "Bob Demo", Email: "bob@example.com"},
	}
	for i := range users {
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			log.Printf("Skipping user %s: %v", users[i].Email, err)
		}
	}

	expenses := []model.Expense{
		{Title: strptr("Morning coffee"), Description: "coffee", Amount: 3.5, Date: "2024-01-01", Category: "food", UserID: users[0].ID},
		{Description: "monthly rent", Amount: 950, Date: "2024-01-02", Category: "housing", UserID: users[0].ID},
		{Title: strptr("Bus pass"), Description: "weekly transit pass", Amount: 21, Date: "2024-01-03", Category: "transport", UserID: users[1].ID},
	}
	seeded := 0
	for i := range expenses {
		if expenses[i].UserID == 0 {
			continue
		}
		if err := expenseRepo.Create(ctx, &expenses[i]); err != nil {
			log.Printf("Skipping expense %q: %v", expenses[i].Description, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeded %d users and %d expenses", len(users), seeded)
}

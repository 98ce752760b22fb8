package main

import (
	"errors"
	"flag"
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/config"
	"inkwell/pkg/database"
	"inkwell/pkg/logger"

	"gorm.io/gorm"
)

// Seeds the first administrator. The account still signs in through Google;
// seeding just flips is_admin ahead of the first sign-in.
func main() {
	var (
		email    = flag.String("email", "", "email of the administrator account")
		username = flag.String("username", "admin", "username for the administrator account")
	)
	flag.Parse()

	if *email == "" {
		panic("usage: seed -email admin@example.com [-username admin]")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	userRepo := persistent.NewUserRepository(db)

	existing, err := userRepo.GetByEmail(*email)
	if err == nil {
		if existing.IsAdmin {
			log.Info("User %s is already an administrator", *email)
			return
		}
		existing.IsAdmin = true
		if err := userRepo.Update(existing); err != nil {
			log.Error("Failed to promote user: %v", err)
			panic(err)
		}
		log.Info("Promoted %s to administrator", *email)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("Failed to look up user: %v", err)
		panic(err)
	}

	admin := &entity.User{
		Username: *username,
		Email:    *email,
		IsAdmin:  true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Error("Failed to create administrator: %v", err)
		panic(err)
	}

	log.Info("Created administrator %s (%s)", admin.Username, admin.Email)
}

package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"energy_backend/internal/config"
	analyticsentity "energy_backend/internal/feature/analytics/domain/entity"
	authentity "energy_backend/internal/feature/auth/domain/entity"
)

// OpenDB はリレーショナルストアへのGORM接続を開きます。
// 起動直後のDB未準備に備えて60秒までリトライします。
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// ユニーク制約違反をgorm.ErrDuplicatedKeyへ変換するためTranslateErrorを有効化
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Consumption）
		if err := db.AutoMigrate(
			&authentity.User{},
			&analyticsentity.Consumption{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

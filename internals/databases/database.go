package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"artsfest_backend/internals/configs"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL (Supabase)...")

	// DSN lengkap + statement_timeout. Kalau lewat PgBouncer (port 6543),
	// biarkan PreferSimpleProtocol=true.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=artsfest&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// Sesuaikan dengan limit Supabase/PgBouncer
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"roombook-backend/models"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "roombook_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// ConnectDatabase opens the MySQL connection, runs migrations and sets the
// package-level DB handle. Demo rows are only seeded when asked for.
func ConnectDatabase(seedDemo bool) error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(&models.Reservation{}); err != nil {
		return err
	}

	if seedDemo {
		SeedDemoReservations(DB)
	}
	return nil
}

// SeedDemoReservations inserts a couple of sample rows for local frontend
// work. Guarded by a count so restarts don't duplicate them.
func SeedDemoReservations(db *gorm.DB) {
	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	if count > 0 {
		log.Println("Reservations already present, skipping demo seed")
		return
	}

	today := time.Now().UTC()
	tomorrow := today.AddDate(0, 0, 1)

	demo := []models.Reservation{
		{
			ID:           uuid.NewString(),
			MeetingName:  "Weekly Sync",
			PersonName:   "Alice",
			MobileNumber: "123-456-7890",
			Date:         today.Format(time.RFC3339),
			StartTime:    "10:00",
			EndTime:      "11:00",
			RoomSize:     models.RoomSizeSmall,
			PIN:          "1234",
		},
		{
			ID:           uuid.NewString(),
			MeetingName:  "Project Brainstorm",
			PersonName:   "Bob",
			MobileNumber: "234-567-8901",
			Date:         tomorrow.Format(time.RFC3339),
			StartTime:    "14:00",
			EndTime:      "15:30",
			RoomSize:     models.RoomSizeLarge,
			PIN:          "5678",
		},
	}

	if err := db.Create(&demo).Error; err != nil {
		log.Printf("warning: failed to seed demo reservations: %v", err)
		return
	}
	log.Println("Demo reservations seeded")
}

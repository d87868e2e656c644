package db

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/failcon/website/internal/models"
)

var conn *gorm.DB

func Init() error {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "failcon.db"
	}

	var err error
	conn, err = gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&models.Profile{},
		&models.Competition{},
		&models.CompetitionRule{},
		&models.Registration{},
		&models.Announcement{},
		&models.FAQ{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	// One registration per (user, competition) — the duplicate check in the
	// submit transaction is backstopped here. GORM struct tags don't express
	// the composite index.
	conn.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_reg_user_competition ON registrations(user_id, competition_id)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_reg_competition_status     ON registrations(competition_id, status)")

	promoteAdmin()

	log.Println("database ready (sqlite)")
	return nil
}

// promoteAdmin grants the admin role to the profile named by ADMIN_EMAIL.
// Editions and further admin accounts are managed out-of-band.
func promoteAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		return
	}
	conn.Model(&models.Profile{}).Where("email = ?", email).Update("role", models.RoleAdmin)
}

func Conn() *gorm.DB {
	return conn
}

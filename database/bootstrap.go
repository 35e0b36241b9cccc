// database/bootstrap.go
package database

import (
	"errors"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pmu/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// IMPORTANT: hash any plaintext credentials left by older deployments
	// BEFORE AutoMigrate renames the column from under them.
	if err := migrateHashPlaintextPasswords(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Employee{},
		&entities.WorkStream{},
		&entities.WorkPlan{},
		&entities.Target{},
		&entities.Program{},
		&entities.FieldTeam{},
		&entities.Task{},
		&entities.Schedule{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// The first deployment stored passwords as raw strings in employees.password.
// migrateHashPlaintextPasswords moves them into password_hash as bcrypt
// digests and drops the old column, all in one transaction.
func migrateHashPlaintextPasswords(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='employees'`).Scan(&tbl).Error; err != nil {
		return err
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	var cols []struct {
		Name string
	}
	if err := db.Raw(`PRAGMA table_info(employees)`).Scan(&cols).Error; err != nil {
		return err
	}
	hasPlain := false
	for _, c := range cols {
		if strings.EqualFold(c.Name, "password") {
			hasPlain = true
			break
		}
	}
	if !hasPlain {
		return nil
	}

	type legacyRow struct {
		ID       uint
		Password string
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`ALTER TABLE employees ADD COLUMN password_hash TEXT`).Error; err != nil &&
			!strings.Contains(err.Error(), "duplicate column") {
			return err
		}
		var rows []legacyRow
		if err := tx.Raw(`SELECT id, password FROM employees WHERE password IS NOT NULL AND password != ''`).Scan(&rows).Error; err != nil {
			return err
		}
		for _, r := range rows {
			if strings.HasPrefix(r.Password, "$2") {
				// already a bcrypt digest, keep as-is
				if err := tx.Exec(`UPDATE employees SET password_hash = ? WHERE id = ?`, r.Password, r.ID).Error; err != nil {
					return err
				}
				continue
			}
			h, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			if err := tx.Exec(`UPDATE employees SET password_hash = ? WHERE id = ?`, string(h), r.ID).Error; err != nil {
				return err
			}
		}
		return tx.Exec(`ALTER TABLE employees DROP COLUMN password`).Error
	})
}

// seedEmployee is one preloaded roster entry.
type seedEmployee struct {
	Name  string
	Email string
}

var preloadedEmployees = []seedEmployee{
	{"Somanchi", "rsomanchi@tns.org"},
	{"Ranu", "rladdha@tns.org"},
	{"Pari", "paris@tns.org"},
	{"Muskan", "mkaushal@tns.org"},
	{"Rupesh", "rmukherjee@tns.org"},
	{"Shifali", "shifalis@tns.org"},
	{"Pragya Bharati", "pbharati@tns.org"},
}

// PreloadEmployees inserts the standing roster. Rows that already exist are
// reported as warnings, never as failures; the remaining rows still load.
func PreloadEmployees(db *gorm.DB, defaultPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	for _, s := range preloadedEmployees {
		e := entities.Employee{Name: s.Name, Email: s.Email, PasswordHash: string(hash)}
		if err := db.Create(&e).Error; err != nil {
			if isUniqueViolation(err) || errors.Is(err, entities.ErrDuplicateKey) {
				log.Printf("[preload] %s already exists, skipping", s.Email)
				continue
			}
			return err
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Package migration runs and tracks schema migrations.
//
// Migrations register themselves from database/migrations via init():
//
//	migration.Register("20260201000000_create_products_table", &CreateProductsTable{})
//
// and the CLI drives the runner:
//
//	store migrate             run all pending
//	store migrate:rollback    roll back the last batch
//	store migrate:status      list migrations and state
package migration

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
)

// Migration is one reversible schema change.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

// migrationRecord tracks applied migrations.
type migrationRecord struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (migrationRecord) TableName() string { return "schema_migrations" }

type entry struct {
	name string
	m    Migration
}

var registry []entry

// Register adds a migration under a timestamp-prefixed name. Names sort
// lexicographically, which is the execution order.
func Register(name string, m Migration) {
	registry = append(registry, entry{name: name, m: m})
}

// Runner executes registered migrations against one database.
type Runner struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

func (r *Runner) ensureTable() error {
	return r.db.AutoMigrate(&migrationRecord{})
}

func (r *Runner) pending() ([]entry, error) {
	var ran []migrationRecord
	if err := r.db.Find(&ran).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(ran))
	for _, rec := range ran {
		applied[rec.Name] = true
	}

	var out []entry
	for _, e := range registry {
		if !applied[e.name] {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

// Run applies all pending migrations as one batch.
func (r *Runner) Run() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	pending, err := r.pending()
	if err != nil {
		return fmt.Errorf("migration: list pending: %w", err)
	}
	if len(pending) == 0 {
		fmt.Println("Nothing to migrate.")
		return nil
	}

	batch := r.nextBatch()
	for _, e := range pending {
		fmt.Printf("  migrating: %s\n", e.name)
		if err := e.m.Up(r.db); err != nil {
			return fmt.Errorf("migration: %s up: %w", e.name, err)
		}
		if err := r.db.Create(&migrationRecord{Name: e.name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration: record %s: %w", e.name, err)
		}
		fmt.Printf("  migrated:  %s\n", e.name)
	}

	logger.Info("migration: done", "ran", len(pending), "batch", batch)
	return nil
}

// Rollback reverses the most recent batch, newest first.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return err
	}

	last := r.nextBatch() - 1
	if last == 0 {
		fmt.Println("Nothing to roll back.")
		return nil
	}

	var records []migrationRecord
	if err := r.db.Where("batch = ?", last).Order("id desc").Find(&records).Error; err != nil {
		return err
	}

	byName := make(map[string]Migration, len(registry))
	for _, e := range registry {
		byName[e.name] = e.m
	}

	for _, rec := range records {
		m, ok := byName[rec.Name]
		if !ok {
			return fmt.Errorf("migration: %s is recorded but not registered", rec.Name)
		}
		fmt.Printf("  rolling back: %s\n", rec.Name)
		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("migration: %s down: %w", rec.Name, err)
		}
		if err := r.db.Delete(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

// Status prints each registered migration and whether it has run.
func (r *Runner) Status() error {
	if err := r.ensureTable(); err != nil {
		return err
	}

	var ran []migrationRecord
	if err := r.db.Find(&ran).Error; err != nil {
		return err
	}
	applied := make(map[string]migrationRecord, len(ran))
	for _, rec := range ran {
		applied[rec.Name] = rec
	}

	fmt.Printf("%-60s  %-8s  %s\n", "Migration", "Status", "Batch")
	fmt.Println(strings.Repeat("-", 80))
	for _, e := range registry {
		if rec, ok := applied[e.name]; ok {
			fmt.Printf("%-60s  %-8s  %d\n", e.name, "ran", rec.Batch)
		} else {
			fmt.Printf("%-60s  %-8s  -\n", e.name, "pending")
		}
	}
	return nil
}

func (r *Runner) nextBatch() int {
	var result struct{ Max int }
	r.db.Model(&migrationRecord{}).Select("COALESCE(MAX(batch), 0) as max").Scan(&result)
	return result.Max + 1
}

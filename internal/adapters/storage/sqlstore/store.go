// Package sqlstore is the embedded SQLite backend of the storage engine,
// built on gorm. Every mutation runs inside one database transaction.
//
// The store keeps a single long-lived connection. Serialising callers is the
// storage engine's job; the store itself is safe for concurrent use but does
// not try to be fast under contention.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time check that Store implements ports.Store.
var _ ports.Store = (*Store)(nil)

// Config selects the database.
type Config struct {
	// Path is the database file. Ignored when InMemory is set.
	Path string
	// InMemory keeps the database in process memory; it is discarded on Close.
	InMemory bool
}

// DSN returns the driver connection string for cfg. Each in-memory
// configuration gets its own private database.
func (c Config) DSN() string {
	if c.InMemory {
		return fmt.Sprintf("file:todo-%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", uuid.NewString())
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", c.Path)
}

// Store implements ports.Store on SQLite.
type Store struct {
	db *gorm.DB
}

// Open connects to the database described by cfg without migrating it.
func Open(cfg Config) (*gorm.DB, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("sqlite path is required unless in_memory is set")
	}
	if !cfg.InMemory {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o750); err != nil {
			return nil, fmt.Errorf("creating sqlite directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing sqlite pool: %w", err)
	}
	// One connection: the in-memory database lives exactly as long as it.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return db, nil
}

// New opens the database described by cfg and migrates its schema.
func New(cfg Config) (*Store, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	return NewFromDB(db)
}

// NewFromDB migrates the schema on an already opened database and returns a
// Store over it. The Store takes ownership of db.
func NewFromDB(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&listRow{}, &taskRow{}, &identifierRow{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// FetchLists implements ports.Store.
func (s *Store) FetchLists(ctx context.Context) ([]list.List, error) {
	var (
		lists []listRow
		tasks []taskRow
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("rowid").Find(&lists).Error; err != nil {
			return fmt.Errorf("querying lists: %w", err)
		}
		if err := tx.Order("rowid").Find(&tasks).Error; err != nil {
			return fmt.Errorf("querying tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toDomainLists(lists, tasks), nil
}

// InsertList implements ports.Store.
func (s *Store) InsertList(ctx context.Context, l list.List) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := claim(tx, l.Identifier, kindList); err != nil {
			return err
		}

		row := fromDomainList(&l)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("inserting list %s: %w", l.Identifier, err)
		}

		for i := range l.Tasks {
			if err := insertTask(tx, l.Identifier, &l.Tasks[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateList implements ports.Store.
func (s *Store) UpdateList(ctx context.Context, l list.List) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&listRow{}).Where("id = ?", l.Identifier.String()).Update("name", l.Name)
		if res.Error != nil {
			return fmt.Errorf("renaming list %s: %w", l.Identifier, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("list %s: %w", l.Identifier, domain.ErrNotFound)
		}
		return nil
	})
}

// DeleteList implements ports.Store.
func (s *Store) DeleteList(ctx context.Context, id domain.Identifier, policy list.DeletePolicy) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &listRow{}, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("list %s: %w", id, domain.ErrNotFound)
		}

		var owned int64
		if err := tx.Model(&taskRow{}).Where("list_id = ?", id.String()).Count(&owned).Error; err != nil {
			return fmt.Errorf("counting tasks of list %s: %w", id, err)
		}
		if owned > 0 && policy == list.DeleteReject {
			return fmt.Errorf("list %s owns %d tasks: %w", id, owned, domain.ErrConflict)
		}

		if err := tx.Where("list_id = ?", id.String()).Delete(&taskRow{}).Error; err != nil {
			return fmt.Errorf("deleting tasks of list %s: %w", id, err)
		}
		if err := tx.Where("id = ?", id.String()).Delete(&listRow{}).Error; err != nil {
			return fmt.Errorf("deleting list %s: %w", id, err)
		}
		return nil
	})
}

// FetchTasks implements ports.Store.
func (s *Store) FetchTasks(ctx context.Context, listID domain.Identifier) ([]task.Task, error) {
	var rows []taskRow

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &listRow{}, listID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("list %s: %w", listID, domain.ErrNotFound)
		}
		if err := tx.Where("list_id = ?", listID.String()).Order("rowid").Find(&rows).Error; err != nil {
			return fmt.Errorf("querying tasks of list %s: %w", listID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toDomainTasks(rows), nil
}

// TaskOwner implements ports.Store.
func (s *Store) TaskOwner(ctx context.Context, taskID domain.Identifier) (domain.Identifier, error) {
	var row taskRow
	err := s.db.WithContext(ctx).Select("list_id").Where("id = ?", taskID.String()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("querying owner of task %s: %w", taskID, err)
	}
	return domain.Identifier(row.ListID), nil
}

// InsertTask implements ports.Store.
func (s *Store) InsertTask(ctx context.Context, listID domain.Identifier, t task.Task) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &listRow{}, listID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("list %s: %w", listID, domain.ErrNotFound)
		}
		return insertTask(tx, listID, &t)
	})
}

// DeleteTask implements ports.Store.
func (s *Store) DeleteTask(ctx context.Context, taskID domain.Identifier) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", taskID.String()).Delete(&taskRow{})
		if res.Error != nil {
			return fmt.Errorf("deleting task %s: %w", taskID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
		}
		return nil
	})
}

// RenameTask implements ports.Store.
func (s *Store) RenameTask(ctx context.Context, taskID domain.Identifier, name string) error {
	return s.updateTask(ctx, taskID, "name", name)
}

// SetTaskStatus implements ports.Store.
func (s *Store) SetTaskStatus(ctx context.Context, taskID domain.Identifier, status task.Status) error {
	return s.updateTask(ctx, taskID, "status", status.String())
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return nil
}

// Close closes the database. An in-memory database is discarded.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) updateTask(ctx context.Context, taskID domain.Identifier, column string, value any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&taskRow{}).Where("id = ?", taskID.String()).Update(column, value)
		if res.Error != nil {
			return fmt.Errorf("updating %s of task %s: %w", column, taskID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
		}
		return nil
	})
}

func insertTask(tx *gorm.DB, listID domain.Identifier, t *task.Task) error {
	if err := claim(tx, t.Identifier, kindTask); err != nil {
		return err
	}

	row := fromDomainTask(listID, t)
	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("inserting task %s: %w", t.Identifier, err)
	}
	return nil
}

func exists(tx *gorm.DB, model any, id domain.Identifier) (bool, error) {
	var n int64
	if err := tx.Model(model).Where("id = ?", id.String()).Count(&n).Error; err != nil {
		return false, fmt.Errorf("looking up %s: %w", id, err)
	}
	return n > 0, nil
}

// claim registers id for a new entity. Any identifier ever claimed before,
// by a List or a Task, live or deleted, is a conflict.
func claim(tx *gorm.DB, id domain.Identifier, kind string) error {
	taken, err := exists(tx, &identifierRow{}, id)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%s %s: identifier already used: %w", kind, id, domain.ErrConflict)
	}
	if err := tx.Create(&identifierRow{ID: id.String(), Kind: kind}).Error; err != nil {
		return fmt.Errorf("claiming identifier %s: %w", id, err)
	}
	return nil
}

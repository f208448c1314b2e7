package recordstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type recordRow struct {
	Name      string `gorm:"primaryKey;size:64"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (recordRow) TableName() string { return "records" }

// SQLiteStore keeps records in a single table of an embedded SQLite file.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite uses the pure-Go modernc driver so no cgo toolchain is needed.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps :memory: databases shared.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&recordRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate records table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, name string) ([]byte, error) {
	var row recordRow
	err := s.db.WithContext(ctx).Where("name = ?", name).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select record %s: %w", name, err)
	}
	return row.Payload, nil
}

func (s *SQLiteStore) Put(ctx context.Context, name string, payload []byte) error {
	row := recordRow{Name: name, Payload: payload, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert record %s: %w", name, err)
	}
	return nil
}

func (s *SQLiteStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

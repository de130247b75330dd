package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"zoo_api/pkg/config"
)

type widget struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func TestNewDatabaseMemory(t *testing.T) {
	db, err := NewDatabase(config.DBConfig{Driver: config.DriverSQLite, DSN: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Ping(context.Background()))
	require.NoError(t, db.AutoMigrate(&widget{}))

	require.NoError(t, db.Create(&widget{Name: "a"}).Error)

	var count int64
	require.NoError(t, db.Model(&widget{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestNewDatabaseCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "zoo.sqlite3")

	db, err := NewDatabase(config.DBConfig{Driver: config.DriverSQLite, DSN: path}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.AutoMigrate(&widget{}))
	assert.FileExists(t, path)
}

func TestNewDatabaseUnknownDriver(t *testing.T) {
	_, err := NewDatabase(config.DBConfig{Driver: "oracle"}, nil)
	assert.Error(t, err)
}

func TestCloseMakesPingFail(t *testing.T) {
	db, err := NewDatabase(config.DBConfig{Driver: config.DriverSQLite, DSN: ":memory:"}, nil)
	require.NoError(t, err)

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping(context.Background()))
}

func TestGormLogsGoThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	db, err := NewDatabase(config.DBConfig{Driver: config.DriverSQLite, DSN: ":memory:"}, zap.New(core))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate(&widget{}))

	var w widget
	err = db.Where("id = ?", 99).First(&w).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Zero(t, logs.FilterMessageSnippet("record not found").Len())
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())

	err = db.Table("missing_table").Find(&[]widget{}).Error
	require.Error(t, err)
	failed := logs.FilterLoggerName("gorm").FilterMessageSnippet("no such table")
	require.NotZero(t, failed.Len())
	assert.Equal(t, zapcore.WarnLevel, failed.All()[0].Level)
}

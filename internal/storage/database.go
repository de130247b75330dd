package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"zoo_api/pkg/config"
)

type Database struct {
	*gorm.DB
}

// NewDatabase 依照 db.driver 建立 sqlite 或 postgres 的連線
func NewDatabase(cfg config.DBConfig, log *zap.Logger) (*Database, error) {
	var dialector gorm.Dialector
	memory := false

	switch cfg.Driver {
	case config.DriverSQLite:
		dsn := cfg.SQLiteDSN()
		memory = strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
		if !memory && !strings.HasPrefix(dsn, "file:") {
			// sqlite 不會自動建立上層目錄
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	if log == nil {
		log = zap.NewNop()
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if memory {
		// 記憶體資料庫只存在於單一連線，連線關閉資料就消失
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	log.Info("database connection established", zap.String("driver", cfg.Driver))
	return &Database{DB: db}, nil
}

// newGormLogger 把 gorm 的輸出導向 zap，查無資料屬於正常流程不記錄
func newGormLogger(log *zap.Logger) gormlogger.Interface {
	named := log.Named("gorm")
	writer, err := zap.NewStdLogAt(named, zapcore.WarnLevel)
	if err != nil {
		writer = zap.NewStdLog(named)
	}
	return gormlogger.New(
		writer,
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func (db *Database) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping 確認資料庫可連線，給健康檢查使用
func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate 自動遷移資料庫結構
func (db *Database) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}

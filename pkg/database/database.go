package database

import (
	"fmt"
	"istudy_lab_backend/internal/config"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/util"
	"istudy_lab_backend/pkg/logger"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string, migrate bool) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := gormLogger.Warn
	if mode == "debug" {
		logLevel = gormLogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver != util.DriverSQLite {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	logger.Log.Info("Database connection established", zap.String("driver", cfg.Driver))

	// release 模式默认不迁移，需要 -migrate 显式开启
	if migrate || mode != "release" {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		logger.Log.Info("Database migration completed")

		if err := SeedQuestions(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Dialector 按配置选择数据库驱动
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case util.DriverMySQL:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
				cfg.User,
				cfg.Password,
				cfg.Host,
				cfg.Port,
				cfg.DBName,
				cfg.Charset,
				cfg.ParseTime,
			)
		}
		return mysql.Open(dsn), nil
	case util.DriverPostgres:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
				cfg.Host,
				cfg.Port,
				cfg.User,
				cfg.Password,
				cfg.DBName,
				cfg.SSLMode,
			)
		}
		return postgres.Open(dsn), nil
	case util.DriverSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			if dir := filepath.Dir(cfg.Path); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return nil, err
				}
			}
			dsn = cfg.Path
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.ProgressEvent{},
		&model.Question{},
	)
}

// SeedQuestions 题库为空时写入少量示例题目
func SeedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []model.Question{
		{
			Subject: model.DefaultSubject, Category: model.DefaultSubject, Difficulty: model.Easy,
			Text:    "Which data structure uses FIFO ordering?",
			OptionA: "Stack", OptionB: "Queue", OptionC: "Tree", OptionD: "Graph",
			Answer: "B", Explanation: "A queue removes elements in the order they were added.",
		},
		{
			Subject: model.DefaultSubject, Category: model.DefaultSubject, Difficulty: model.Medium,
			Text:    "What is the average time complexity of binary search?",
			OptionA: "O(n)", OptionB: "O(n log n)", OptionC: "O(log n)", OptionD: "O(1)",
			Answer: "C", Explanation: "Each comparison halves the remaining search space.",
		},
		{
			Subject: "Science", Category: "Physics", Difficulty: model.Easy,
			Text:    "What is the SI unit of force?",
			OptionA: "Joule", OptionB: "Watt", OptionC: "Pascal", OptionD: "Newton",
			Answer: "D", Explanation: "One newton accelerates one kilogram at one metre per second squared.",
		},
		{
			Subject: "History", Category: "World History", Difficulty: model.Medium,
			Text:    "In which year did the Berlin Wall fall?",
			OptionA: "1985", OptionB: "1989", OptionC: "1991", OptionD: "1961",
			Answer: "B", Explanation: "The wall was opened on 9 November 1989.",
		},
	}
	return db.Create(&defaults).Error
}

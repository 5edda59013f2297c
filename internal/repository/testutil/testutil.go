package testutil

import (
	"context"
	"fmt"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/pkg/database"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB 每个测试独立的内存 sqlite 数据库
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

// Redis 基于 miniredis 的 redis 客户端，测试结束时关闭
func Redis(tb testing.TB) (*redis.Client, *miniredis.Miniredis) {
	tb.Helper()

	mr := miniredis.RunT(tb)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	tb.Cleanup(func() {
		_ = rdb.Close()
	})
	return rdb, mr
}

// SeedEvent 直接写入事件，绕过 Recording API 的默认值处理
func SeedEvent(tb testing.TB, db *gorm.DB, event model.ProgressEvent) *model.ProgressEvent {
	tb.Helper()
	if event.Date.IsZero() {
		event.Date = time.Now()
	}
	event.Date = event.Date.UTC()
	if event.SubjectsStudied == nil {
		event.SubjectsStudied = []string{}
	}
	if event.Achievements == nil {
		event.Achievements = []string{}
	}
	if err := db.WithContext(context.Background()).Create(&event).Error; err != nil {
		tb.Fatalf("seed progress event: %v", err)
	}
	return &event
}

// SeedAttempt 写入一条答题事件
func SeedAttempt(tb testing.TB, db *gorm.DB, userID uint, subject string, index int, correct bool, at time.Time) *model.ProgressEvent {
	tb.Helper()
	ts := at.UTC()
	return SeedEvent(tb, db, model.ProgressEvent{
		UserID:           userID,
		Date:             at,
		QuizzesCompleted: 1,
		StudyTime:        5,
		Question: model.QuestionDetails{
			QuestionIndex:  IntPtr(index),
			IsCorrect:      BoolPtr(correct),
			Subject:        subject,
			Timestamp:      &ts,
			SelectedAnswer: "A",
			CorrectAnswer:  "B",
		},
	})
}

func SeedQuestions(tb testing.TB, db *gorm.DB, questions ...model.Question) []model.Question {
	tb.Helper()
	if err := db.Create(&questions).Error; err != nil {
		tb.Fatalf("seed questions: %v", err)
	}
	return questions
}

func IntPtr(v int) *int {
	return &v
}

func BoolPtr(v bool) *bool {
	return &v
}

func TimePtr(v time.Time) *time.Time {
	return &v
}

package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProgressEvent 一次学习/答题行为的不可变记录，只追加不修改
// swagger:model ProgressEvent
type ProgressEvent struct {
	ID               uint                        `gorm:"primaryKey;autoIncrement"`
	UserID           uint                        `gorm:"not null;index:idx_progress_user_date,priority:1;index:idx_progress_user_subject,priority:1;uniqueIndex:idx_progress_user_idem,priority:1"`
	Date             time.Time                   `gorm:"column:event_date;not null;index:idx_progress_user_date,priority:2"`
	DailyProgress    int                         `gorm:"default:0"`
	QuizzesCompleted int                         `gorm:"default:0"`
	StudyTime        int                         `gorm:"default:0"` // 分钟
	SubjectsStudied  datatypes.JSONSlice[string]
	Achievements     datatypes.JSONSlice[string]
	Score            int                         `gorm:"default:0"`
	Question         QuestionDetails             `gorm:"embedded;embeddedPrefix:question_"`
	IdempotencyKey   *string                     `gorm:"size:64;uniqueIndex:idx_progress_user_idem,priority:2"`
	CreatedAt        time.Time
}

// QuestionDetails 单题作答详情；QuestionIndex 为空表示该记录不是答题事件
type QuestionDetails struct {
	QuestionIndex  *int
	IsCorrect      *bool
	Subject        string `gorm:"size:100;index:idx_progress_user_subject,priority:2"`
	Timestamp      *time.Time
	SelectedAnswer string `gorm:"type:text"`
	CorrectAnswer  string `gorm:"type:text"`
	Explanation    string `gorm:"type:text"`
}

func (ProgressEvent) TableName() string {
	return "progress_events"
}

// HasQuestion 是否携带答题详情
func (e *ProgressEvent) HasQuestion() bool {
	return e.Question.QuestionIndex != nil || e.Question.Subject != "" || e.Question.Timestamp != nil
}

// AttemptTime 答题时间，缺失时退回事件时间
func (e *ProgressEvent) AttemptTime() time.Time {
	if e.Question.Timestamp != nil {
		return *e.Question.Timestamp
	}
	return e.Date
}

package repository

import (
	"context"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/util"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgressRepository 进度事件存储，只提供追加和查询
type ProgressRepository struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db, Now: time.Now}
}

// Create 追加一条事件，未设置日期时使用服务器时间
func (r *ProgressRepository) Create(ctx context.Context, event *model.ProgressEvent) error {
	if event.Date.IsZero() {
		event.Date = r.Now()
	}
	event.Date = event.Date.UTC()
	if event.Question.Timestamp != nil {
		ts := event.Question.Timestamp.UTC()
		event.Question.Timestamp = &ts
	}
	if event.SubjectsStudied == nil {
		event.SubjectsStudied = datatypes.JSONSlice[string]{}
	}
	if event.Achievements == nil {
		event.Achievements = datatypes.JSONSlice[string]{}
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return util.StoreError("create progress event", err)
	}
	return nil
}

// FindByUserBetween 按日期升序返回 [from, to] 区间内的事件
func (r *ProgressRepository) FindByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.ProgressEvent, error) {
	var events []model.ProgressEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND event_date >= ? AND event_date <= ?", userID, from.UTC(), to.UTC()).
		Order("event_date ASC").
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, util.StoreError("find weekly progress events", err)
	}
	return events, nil
}

// FindByUserAndSubject 某科目的答题事件，按答题时间升序
func (r *ProgressRepository) FindByUserAndSubject(ctx context.Context, userID uint, subject string) ([]model.ProgressEvent, error) {
	var events []model.ProgressEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND question_subject = ?", userID, subject).
		Order("question_timestamp ASC").
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, util.StoreError("find subject progress events", err)
	}
	return events, nil
}

// FindQuestionHistory 某科目的答题事件，最近的在前
func (r *ProgressRepository) FindQuestionHistory(ctx context.Context, userID uint, subject string) ([]model.ProgressEvent, error) {
	var events []model.ProgressEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND question_subject = ?", userID, subject).
		Order("question_timestamp DESC").
		Order("id DESC").
		Find(&events).Error
	if err != nil {
		return nil, util.StoreError("find question history", err)
	}
	return events, nil
}

// Totals 用户全部事件的求和与平均分
func (r *ProgressRepository) Totals(ctx context.Context, userID uint) (*model.ProgressTotals, error) {
	var row struct {
		TotalQuizzes   int64
		TotalStudyTime int64
		AverageScore   *float64
		EventCount     int64
	}
	err := r.DB.WithContext(ctx).
		Model(&model.ProgressEvent{}).
		Select("COALESCE(SUM(quizzes_completed), 0) AS total_quizzes, "+
			"COALESCE(SUM(study_time), 0) AS total_study_time, "+
			"AVG(score) AS average_score, "+
			"COUNT(*) AS event_count").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, util.StoreError("aggregate progress totals", err)
	}

	totals := &model.ProgressTotals{
		TotalQuizzes:   row.TotalQuizzes,
		TotalStudyTime: row.TotalStudyTime,
		EventCount:     row.EventCount,
	}
	if row.AverageScore != nil {
		totals.AverageScore = *row.AverageScore
	}
	return totals, nil
}

// SubjectSets 用户所有事件的科目集合
func (r *ProgressRepository) SubjectSets(ctx context.Context, userID uint) ([][]string, error) {
	var events []model.ProgressEvent
	err := r.DB.WithContext(ctx).
		Select("id", "subjects_studied").
		Where("user_id = ?", userID).
		Find(&events).Error
	if err != nil {
		return nil, util.StoreError("list subjects studied", err)
	}

	sets := make([][]string, 0, len(events))
	for _, e := range events {
		sets = append(sets, e.SubjectsStudied)
	}
	return sets, nil
}

// FindByIdempotencyKey 未找到时返回 (nil, nil)
func (r *ProgressRepository) FindByIdempotencyKey(ctx context.Context, userID uint, key string) (*model.ProgressEvent, error) {
	var event model.ProgressEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		First(&event).Error
	if err != nil {
		if util.IsNotFound(err) {
			return nil, nil
		}
		return nil, util.StoreError("find progress event by idempotency key", err)
	}
	return &event, nil
}

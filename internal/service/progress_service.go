package service

import (
	"context"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/repository"
	"istudy_lab_backend/internal/util"
	"istudy_lab_backend/pkg/logger"
	"istudy_lab_backend/pkg/monitoring"
	"istudy_lab_backend/pkg/tracing"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// 请求中未提供字段时的默认值
const (
	DefaultDailyProgress    = 0
	DefaultQuizzesCompleted = 1
	DefaultStudyTime        = 5
	DefaultScore            = 0
)

// ProgressStore 进度事件存储
type ProgressStore interface {
	Create(ctx context.Context, event *model.ProgressEvent) error
	FindByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.ProgressEvent, error)
	FindByUserAndSubject(ctx context.Context, userID uint, subject string) ([]model.ProgressEvent, error)
	FindQuestionHistory(ctx context.Context, userID uint, subject string) ([]model.ProgressEvent, error)
	Totals(ctx context.Context, userID uint) (*model.ProgressTotals, error)
	SubjectSets(ctx context.Context, userID uint) ([][]string, error)
	FindByIdempotencyKey(ctx context.Context, userID uint, key string) (*model.ProgressEvent, error)
}

type ProgressService struct {
	Store ProgressStore
	Cache *repository.SummaryCache
	// Location 周统计按此时区划分日期
	Location *time.Location
	Now      func() time.Time
}

func NewProgressService(store ProgressStore, cache *repository.SummaryCache, loc *time.Location) *ProgressService {
	if loc == nil {
		loc = time.Local
	}
	return &ProgressService{
		Store:    store,
		Cache:    cache,
		Location: loc,
		Now:      time.Now,
	}
}

func (s *ProgressService) now() time.Time {
	return s.Now().In(s.Location)
}

// RecordProgress 追加一条进度事件。带幂等键的重复请求返回首次写入的事件。
func (s *ProgressService) RecordProgress(ctx context.Context, userID uint, input *model.RecordProgressInput) (event *model.ProgressEvent, err error) {
	ctx, span := tracing.Start(ctx, "ProgressService.RecordProgress")
	span.SetAttributes(attribute.Int64("user.id", int64(userID)))
	defer func() { tracing.End(span, err) }()

	if userID == 0 {
		return nil, util.NewValidationError("user id is required")
	}
	if input == nil {
		input = &model.RecordProgressInput{}
	}
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	if key != "" {
		existing, err := s.Store.FindByIdempotencyKey(ctx, userID, key)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			logger.Log.Debug("重复的进度记录请求",
				zap.Uint("userID", userID),
				zap.String("idempotencyKey", key),
				zap.Uint("eventID", existing.ID))
			return existing, nil
		}
	}

	event = buildEvent(userID, input, s.Now())
	if key != "" {
		event.IdempotencyKey = &key
	}

	if err := s.Store.Create(ctx, event); err != nil {
		if key == "" {
			return nil, err
		}
		// 并发请求使用了同一个幂等键，唯一索引冲突后返回已写入的那条
		existing, lookupErr := s.Store.FindByIdempotencyKey(ctx, userID, key)
		if lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}

	monitoring.EventsRecorded.Inc()
	if err := s.Cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warn("清除进度汇总缓存失败", zap.Uint("userID", userID), zap.Error(err))
	}

	logger.Log.Debug("记录学习进度",
		zap.Uint("userID", userID),
		zap.Uint("eventID", event.ID),
		zap.Int("dailyProgress", event.DailyProgress))
	return event, nil
}

func buildEvent(userID uint, input *model.RecordProgressInput, now time.Time) *model.ProgressEvent {
	event := &model.ProgressEvent{
		UserID:           userID,
		Date:             now,
		DailyProgress:    intOr(input.DailyProgress, DefaultDailyProgress),
		QuizzesCompleted: intOr(input.QuizzesCompleted, DefaultQuizzesCompleted),
		StudyTime:        intOr(input.StudyTime, DefaultStudyTime),
		SubjectsStudied:  datatypes.JSONSlice[string](append([]string{}, input.SubjectsStudied...)),
		Achievements:     datatypes.JSONSlice[string](append([]string{}, input.Achievements...)),
		Score:            intOr(input.Score, DefaultScore),
	}

	if q := input.QuestionDetails; q != nil {
		event.Question = model.QuestionDetails{
			QuestionIndex:  q.QuestionIndex,
			IsCorrect:      q.IsCorrect,
			Subject:        q.Subject,
			SelectedAnswer: q.SelectedAnswer,
			CorrectAnswer:  q.CorrectAnswer,
			Explanation:    q.Explanation,
		}
		if q.Timestamp != nil {
			ts := q.Timestamp.UTC()
			event.Question.Timestamp = &ts
		}
	}
	return event
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// GetWeeklyProgress 当前自然周（周一至周日）的进度
func (s *ProgressService) GetWeeklyProgress(ctx context.Context, userID uint) (weekly *model.WeeklyProgress, err error) {
	ctx, span := tracing.Start(ctx, "ProgressService.GetWeeklyProgress")
	defer func() { tracing.End(span, err) }()
	defer monitoring.ObserveAggregation("weekly", time.Now())

	now := s.now()
	start, end := WeekBounds(now)
	events, err := s.Store.FindByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("progress.events", len(events)))

	return BuildWeeklyProgress(events, now), nil
}

// GetProgressSummary 全部历史汇总，优先读缓存
func (s *ProgressService) GetProgressSummary(ctx context.Context, userID uint) (summary *model.ProgressSummary, err error) {
	ctx, span := tracing.Start(ctx, "ProgressService.GetProgressSummary")
	defer func() { tracing.End(span, err) }()
	defer monitoring.ObserveAggregation("summary", time.Now())

	// 代数必须在读取存储之前取得，读取期间有新记录时本次结果写到旧代数上
	gen, cacheErr := s.Cache.Generation(ctx, userID)
	useCache := cacheErr == nil
	if cacheErr != nil {
		logger.Log.Warn("读取进度汇总缓存代数失败", zap.Uint("userID", userID), zap.Error(cacheErr))
	}
	if useCache {
		cached, hit, err := s.Cache.Get(ctx, userID, gen)
		if err != nil {
			logger.Log.Warn("读取进度汇总缓存失败", zap.Uint("userID", userID), zap.Error(err))
		}
		if hit {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached, nil
		}
	}

	totals, err := s.Store.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}
	subjectSets, err := s.Store.SubjectSets(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary = BuildSummary(totals, subjectSets)
	if useCache {
		if err := s.Cache.Set(ctx, userID, gen, summary); err != nil {
			logger.Log.Warn("写入进度汇总缓存失败", zap.Uint("userID", userID), zap.Error(err))
		}
	}
	return summary, nil
}

// GetQuizProgress 重建某科目的答题进度，每题取最近一次作答
func (s *ProgressService) GetQuizProgress(ctx context.Context, userID uint, subject string) (progress *model.QuizProgress, err error) {
	ctx, span := tracing.Start(ctx, "ProgressService.GetQuizProgress")
	defer func() { tracing.End(span, err) }()
	defer monitoring.ObserveAggregation("quiz", time.Now())

	if strings.TrimSpace(subject) == "" {
		return nil, util.NewValidationError("Subject parameter is required")
	}
	span.SetAttributes(attribute.String("quiz.subject", subject))

	events, err := s.Store.FindByUserAndSubject(ctx, userID, subject)
	if err != nil {
		return nil, err
	}
	return ReconstructQuizProgress(events), nil
}

// GetQuestionHistory 某科目下的答题记录，最近的在前
func (s *ProgressService) GetQuestionHistory(ctx context.Context, userID uint, subject string) (attempts []model.QuestionAttempt, err error) {
	ctx, span := tracing.Start(ctx, "ProgressService.GetQuestionHistory")
	defer func() { tracing.End(span, err) }()

	if strings.TrimSpace(subject) == "" {
		return nil, util.NewValidationError("Subject parameter is required")
	}

	events, err := s.Store.FindQuestionHistory(ctx, userID, subject)
	if err != nil {
		return nil, err
	}
	return BuildQuestionHistory(events), nil
}

package service

import (
	"context"
	"errors"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/repository"
	"istudy_lab_backend/internal/repository/testutil"
	"istudy_lab_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func newProgressService(t *testing.T) (*ProgressService, *gorm.DB, *clock) {
	t.Helper()
	db := testutil.DB(t)
	clk := &clock{now: wednesday}
	svc := NewProgressService(repository.NewProgressRepository(db), repository.NewSummaryCache(nil, 0), time.UTC)
	svc.Now = clk.Now
	return svc, db, clk
}

func countEvents(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.ProgressEvent{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

func TestRecordProgressAppliesDefaults(t *testing.T) {
	svc, db, _ := newProgressService(t)

	event, err := svc.RecordProgress(context.Background(), 1, &model.RecordProgressInput{})
	require.NoError(t, err)

	assert.NotZero(t, event.ID)
	assert.Equal(t, DefaultDailyProgress, event.DailyProgress)
	assert.Equal(t, DefaultQuizzesCompleted, event.QuizzesCompleted)
	assert.Equal(t, DefaultStudyTime, event.StudyTime)
	assert.Equal(t, DefaultScore, event.Score)
	assert.Empty(t, event.SubjectsStudied)
	assert.Empty(t, event.Achievements)
	assert.False(t, event.HasQuestion())
	assert.True(t, event.Date.Equal(wednesday))
	assert.EqualValues(t, 1, countEvents(t, db, 1))
}

func TestRecordProgressKeepsExplicitZero(t *testing.T) {
	svc, _, _ := newProgressService(t)

	zero := 0
	event, err := svc.RecordProgress(context.Background(), 1, &model.RecordProgressInput{
		QuizzesCompleted: &zero,
		StudyTime:        &zero,
	})
	require.NoError(t, err)

	assert.Zero(t, event.QuizzesCompleted)
	assert.Zero(t, event.StudyTime)
}

func TestRecordProgressStoresQuestionDetails(t *testing.T) {
	svc, _, _ := newProgressService(t)

	ts := time.Date(2025, 3, 12, 9, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
	event, err := svc.RecordProgress(context.Background(), 1, &model.RecordProgressInput{
		SubjectsStudied: []string{"History"},
		QuestionDetails: &model.QuestionDetailsInput{
			QuestionIndex: testutil.IntPtr(3),
			IsCorrect:     testutil.BoolPtr(true),
			Subject:       "History",
			Timestamp:     &ts,
		},
	})
	require.NoError(t, err)

	require.True(t, event.HasQuestion())
	assert.Equal(t, 3, *event.Question.QuestionIndex)
	assert.Equal(t, time.UTC, event.Question.Timestamp.Location())
	assert.True(t, event.Question.Timestamp.Equal(ts))
	assert.Equal(t, "", event.Question.SelectedAnswer)
	assert.Equal(t, []string{"History"}, []string(event.SubjectsStudied))
}

func TestRecordProgressValidation(t *testing.T) {
	svc, db, _ := newProgressService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		userID uint
		input  *model.RecordProgressInput
	}{
		{"missing user", 0, &model.RecordProgressInput{}},
		{"progress above 100", 1, &model.RecordProgressInput{DailyProgress: testutil.IntPtr(101)}},
		{"negative progress", 1, &model.RecordProgressInput{DailyProgress: testutil.IntPtr(-1)}},
		{"negative study time", 1, &model.RecordProgressInput{StudyTime: testutil.IntPtr(-5)}},
		{"negative question index", 1, &model.RecordProgressInput{
			QuestionDetails: &model.QuestionDetailsInput{QuestionIndex: testutil.IntPtr(-1)},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordProgress(ctx, tc.userID, tc.input)
			assert.True(t, errors.Is(err, util.ErrValidation), "got %v", err)
		})
	}
	assert.Zero(t, countEvents(t, db, 1))
}

func TestRecordProgressIdempotencyKey(t *testing.T) {
	svc, db, _ := newProgressService(t)
	ctx := context.Background()

	first, err := svc.RecordProgress(ctx, 1, &model.RecordProgressInput{DailyProgress: testutil.IntPtr(40), IdempotencyKey: "req-1"})
	require.NoError(t, err)
	again, err := svc.RecordProgress(ctx, 1, &model.RecordProgressInput{DailyProgress: testutil.IntPtr(90), IdempotencyKey: "req-1"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 40, again.DailyProgress)
	assert.EqualValues(t, 1, countEvents(t, db, 1))

	// 不带键的请求每次都追加
	_, err = svc.RecordProgress(ctx, 1, &model.RecordProgressInput{})
	require.NoError(t, err)
	_, err = svc.RecordProgress(ctx, 1, &model.RecordProgressInput{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, countEvents(t, db, 1))
}

func TestGetWeeklyProgressFromRecordedEvents(t *testing.T) {
	svc, _, clk := newProgressService(t)
	ctx := context.Background()

	record := func(now time.Time, progress int) {
		clk.now = now
		_, err := svc.RecordProgress(ctx, 1, &model.RecordProgressInput{DailyProgress: &progress})
		require.NoError(t, err)
	}
	record(at(10, 8), 20)
	record(at(10, 9), 50)
	record(at(12, 9), 30)
	record(at(3, 9), 90)

	clk.now = wednesday
	weekly, err := svc.GetWeeklyProgress(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 50, weekly.Days[0].Progress)
	assert.Equal(t, 50, weekly.Days[0].CumulativeProgress)
	assert.Equal(t, 80, weekly.Days[2].CumulativeProgress)
	assert.Equal(t, 80, weekly.TotalProgress)

	other, err := svc.GetWeeklyProgress(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, other.TotalProgress)
}

func TestGetProgressSummary(t *testing.T) {
	svc, db, _ := newProgressService(t)
	ctx := context.Background()

	empty, err := svc.GetProgressSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &model.ProgressSummary{}, empty)

	testutil.SeedEvent(t, db, model.ProgressEvent{UserID: 1, QuizzesCompleted: 2, StudyTime: 15, Score: 80, SubjectsStudied: []string{"Math", "Science"}})
	testutil.SeedEvent(t, db, model.ProgressEvent{UserID: 1, QuizzesCompleted: 1, StudyTime: 40, Score: 55, SubjectsStudied: []string{"Math"}})
	testutil.SeedEvent(t, db, model.ProgressEvent{UserID: 2, QuizzesCompleted: 9, StudyTime: 99, Score: 10})

	summary, err := svc.GetProgressSummary(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalQuizzes)
	assert.Equal(t, 55, summary.TotalStudyTime)
	assert.Equal(t, 2, summary.SubjectsStudied)
	// (80+55)/2 = 67.5
	assert.Equal(t, 68, summary.AverageScore)
}

func TestGetQuizProgress(t *testing.T) {
	svc, db, _ := newProgressService(t)
	ctx := context.Background()

	_, err := svc.GetQuizProgress(ctx, 1, " ")
	assert.True(t, errors.Is(err, util.ErrValidation))

	unknown, err := svc.GetQuizProgress(ctx, 1, "Geography")
	require.NoError(t, err)
	assert.Zero(t, unknown.TotalQuestions)
	assert.Empty(t, unknown.CompletedQuestions)

	t0 := at(10, 8)
	testutil.SeedAttempt(t, db, 1, "History", 2, false, t0)
	testutil.SeedAttempt(t, db, 1, "History", 2, true, t0.Add(time.Minute))
	testutil.SeedAttempt(t, db, 1, "Science", 0, true, t0)

	progress, err := svc.GetQuizProgress(ctx, 1, "History")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, progress.CompletedQuestions)
	assert.True(t, progress.QuestionResults[2])
	assert.Equal(t, 1, progress.TotalScore)
}

func TestGetQuestionHistory(t *testing.T) {
	svc, db, _ := newProgressService(t)
	ctx := context.Background()

	_, err := svc.GetQuestionHistory(ctx, 1, "")
	assert.True(t, errors.Is(err, util.ErrValidation))

	t0 := at(10, 8)
	testutil.SeedAttempt(t, db, 1, "History", 1, false, t0)
	testutil.SeedAttempt(t, db, 1, "History", 1, true, t0.Add(time.Minute))

	history, err := svc.GetQuestionHistory(ctx, 1, "History")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, *history[0].IsCorrect)
	assert.False(t, *history[1].IsCorrect)
}

func TestProgressServiceStoreUnavailable(t *testing.T) {
	svc, db, _ := newProgressService(t)
	ctx := context.Background()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.RecordProgress(ctx, 1, &model.RecordProgressInput{})
	assert.True(t, errors.Is(err, util.ErrStoreUnavailable), "record: %v", err)

	_, err = svc.GetWeeklyProgress(ctx, 1)
	assert.True(t, errors.Is(err, util.ErrStoreUnavailable), "weekly: %v", err)

	_, err = svc.GetProgressSummary(ctx, 1)
	assert.True(t, errors.Is(err, util.ErrStoreUnavailable), "summary: %v", err)
}

// recordDuringSummary 在汇总读完存储之后、写缓存之前插入一次写入
type recordDuringSummary struct {
	ProgressStore
	hook func()
}

func (s *recordDuringSummary) SubjectSets(ctx context.Context, userID uint) ([][]string, error) {
	sets, err := s.ProgressStore.SubjectSets(ctx, userID)
	if hook := s.hook; hook != nil {
		s.hook = nil
		hook()
	}
	return sets, err
}

func newCachedProgressService(t *testing.T) (*ProgressService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	rdb, _ := testutil.Redis(t)
	svc := NewProgressService(repository.NewProgressRepository(db), repository.NewSummaryCache(rdb, time.Minute), time.UTC)
	svc.Now = func() time.Time { return wednesday }
	return svc, db
}

func TestGetProgressSummaryCachedAndInvalidated(t *testing.T) {
	svc, _ := newCachedProgressService(t)
	ctx := context.Background()

	_, err := svc.RecordProgress(ctx, 1, &model.RecordProgressInput{StudyTime: testutil.IntPtr(10)})
	require.NoError(t, err)

	first, err := svc.GetProgressSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, first.TotalStudyTime)

	cached, err := svc.GetProgressSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	_, err = svc.RecordProgress(ctx, 1, &model.RecordProgressInput{StudyTime: testutil.IntPtr(20)})
	require.NoError(t, err)

	after, err := svc.GetProgressSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, after.TotalStudyTime)
	assert.Equal(t, 2, after.TotalQuizzes)
}

func TestGetProgressSummaryRecordWhileAggregating(t *testing.T) {
	svc, _ := newCachedProgressService(t)
	ctx := context.Background()

	_, err := svc.RecordProgress(ctx, 1, &model.RecordProgressInput{StudyTime: testutil.IntPtr(10)})
	require.NoError(t, err)

	store := &recordDuringSummary{ProgressStore: svc.Store}
	store.hook = func() {
		_, err := svc.RecordProgress(ctx, 1, &model.RecordProgressInput{StudyTime: testutil.IntPtr(20)})
		require.NoError(t, err)
	}
	svc.Store = store

	first, err := svc.GetProgressSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, first.TotalStudyTime)

	second, err := svc.GetProgressSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, second.TotalStudyTime, "summary must reflect the event recorded during aggregation")

	third, err := svc.GetProgressSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestReadsAreRepeatableWithoutWrites(t *testing.T) {
	for name, newService := range map[string]func(t *testing.T) (*ProgressService, *gorm.DB){
		"no cache": func(t *testing.T) (*ProgressService, *gorm.DB) {
			svc, db, _ := newProgressService(t)
			return svc, db
		},
		"redis cache": newCachedProgressService,
	} {
		t.Run(name, func(t *testing.T) {
			svc, db := newService(t)
			ctx := context.Background()

			testutil.SeedEvent(t, db, model.ProgressEvent{UserID: 1, Date: at(10, 8), DailyProgress: 20, QuizzesCompleted: 1, StudyTime: 15, Score: 70, SubjectsStudied: []string{"Math"}})
			testutil.SeedEvent(t, db, model.ProgressEvent{UserID: 1, Date: at(10, 9), DailyProgress: 50, QuizzesCompleted: 2, StudyTime: 5, Score: 91, SubjectsStudied: []string{"History"}})
			testutil.SeedEvent(t, db, model.ProgressEvent{UserID: 1, Date: at(12, 9), DailyProgress: 30, QuizzesCompleted: 1, StudyTime: 25})
			t0 := at(11, 8)
			testutil.SeedAttempt(t, db, 1, "History", 0, true, t0)
			testutil.SeedAttempt(t, db, 1, "History", 3, false, t0.Add(time.Minute))
			testutil.SeedAttempt(t, db, 1, "History", 3, true, t0.Add(2*time.Minute))
			testutil.SeedAttempt(t, db, 1, "History", 1, false, t0.Add(2*time.Minute))

			weekly1, err := svc.GetWeeklyProgress(ctx, 1)
			require.NoError(t, err)
			weekly2, err := svc.GetWeeklyProgress(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, weekly1, weekly2)

			summary1, err := svc.GetProgressSummary(ctx, 1)
			require.NoError(t, err)
			summary2, err := svc.GetProgressSummary(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, summary1, summary2)

			quiz1, err := svc.GetQuizProgress(ctx, 1, "History")
			require.NoError(t, err)
			quiz2, err := svc.GetQuizProgress(ctx, 1, "History")
			require.NoError(t, err)
			assert.Equal(t, quiz1, quiz2)
			assert.Equal(t, []int{0, 1, 3}, quiz1.CompletedQuestions)
			assert.Equal(t, map[int]bool{0: true, 1: false, 3: true}, quiz1.QuestionResults)
		})
	}
}

package repository

import (
	"context"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/repository/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCacheWithoutRedisIsNoop(t *testing.T) {
	ctx := context.Background()
	cache := NewSummaryCache(nil, 0)
	assert.Equal(t, 5*time.Minute, cache.TTL)

	gen, err := cache.Generation(ctx, 1)
	assert.NoError(t, err)
	assert.Zero(t, gen)

	assert.NoError(t, cache.Set(ctx, 1, gen, &model.ProgressSummary{TotalQuizzes: 3}))
	got, ok, err := cache.Get(ctx, 1, gen)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.NoError(t, cache.Invalidate(ctx, 1))

	var nilCache *SummaryCache
	_, ok, err = nilCache.Get(ctx, 1, 0)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSummaryKeys(t *testing.T) {
	assert.Equal(t, "progress:summary:42:3", summaryKey(42, 3))
	assert.Equal(t, "progress:summary:gen:42", generationKey(42))
}

func TestSummaryCacheHitAndMiss(t *testing.T) {
	rdb, mr := testutil.Redis(t)
	cache := NewSummaryCache(rdb, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, 1, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	want := &model.ProgressSummary{TotalQuizzes: 2, TotalStudyTime: 45, SubjectsStudied: 2, AverageScore: 80}
	require.NoError(t, cache.Set(ctx, 1, 0, want))
	assert.Equal(t, time.Minute, mr.TTL(summaryKey(1, 0)))

	got, ok, err := cache.Get(ctx, 1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	// 其他用户不受影响
	_, ok, err = cache.Get(ctx, 2, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(time.Minute + time.Second)
	_, ok, err = cache.Get(ctx, 1, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSummaryCacheInvalidateBumpsGeneration(t *testing.T) {
	rdb, mr := testutil.Redis(t)
	cache := NewSummaryCache(rdb, time.Minute)
	ctx := context.Background()

	gen, err := cache.Generation(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, 1, gen, &model.ProgressSummary{TotalStudyTime: 10}))

	require.NoError(t, cache.Invalidate(ctx, 1))
	assert.False(t, mr.Exists(summaryKey(1, gen)))

	next, err := cache.Generation(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, gen+1, next)

	// 失效前读到旧代数的请求晚写入，不会被新代数读到
	require.NoError(t, cache.Set(ctx, 1, gen, &model.ProgressSummary{TotalStudyTime: 10}))
	_, ok, err := cache.Get(ctx, 1, next)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSummaryCacheRedisDown(t *testing.T) {
	rdb, mr := testutil.Redis(t)
	cache := NewSummaryCache(rdb, time.Minute)
	mr.Close()

	ctx := context.Background()
	_, err := cache.Generation(ctx, 1)
	assert.Error(t, err)
	_, _, err = cache.Get(ctx, 1, 0)
	assert.Error(t, err)
	assert.Error(t, cache.Invalidate(ctx, 1))
}

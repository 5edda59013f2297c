package service

import (
	"context"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/repository"
	"istudy_lab_backend/internal/repository/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestionService(t *testing.T) (*QuestionService, []model.Question) {
	t.Helper()
	db := testutil.DB(t)
	seeded := testutil.SeedQuestions(t, db,
		model.Question{Subject: "Math", Category: "Algebra", Difficulty: model.Easy, Text: "1+1?", OptionA: "1", OptionB: "2", OptionC: "3", OptionD: "4", Answer: "B", Explanation: "Basic addition."},
		model.Question{Subject: "Math", Category: "Geometry", Difficulty: model.Hard, Text: "Angles in a triangle?", OptionA: "90", OptionB: "360", OptionC: "180", OptionD: "270", Answer: "C"},
		model.Question{Subject: "Math", Category: "Algebra", Difficulty: model.Easy, Text: "2*3?", OptionA: "6", OptionB: "5", OptionC: "8", OptionD: "9", Answer: "A"},
		model.Question{Subject: "History", Category: "World History", Difficulty: model.Medium, Text: "Year?", OptionA: "1", OptionB: "2", OptionC: "3", OptionD: "4", Answer: "D"},
	)
	return NewQuestionService(repository.NewQuestionRepository(db)), seeded
}

func TestListQuestions(t *testing.T) {
	svc, seeded := newQuestionService(t)
	ctx := context.Background()

	all, err := svc.ListQuestions(ctx, model.QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, []string{"1", "2", "3", "4"}, all[0].Options)
	assert.Equal(t, seeded[0].Text, all[0].Question)

	algebra, err := svc.ListQuestions(ctx, model.QuestionFilter{Subject: "Math", Category: "Algebra", Limit: 1})
	require.NoError(t, err)
	require.Len(t, algebra, 1)
	assert.Equal(t, seeded[0].ID, algebra[0].ID)

	hard, err := svc.ListQuestions(ctx, model.QuestionFilter{Difficulty: string(model.Hard)})
	require.NoError(t, err)
	require.Len(t, hard, 1)
	assert.Equal(t, "C", hard[0].Answer)
}

func TestSubmitAnswers(t *testing.T) {
	svc, seeded := newQuestionService(t)

	result, err := svc.SubmitAnswers(context.Background(), []model.AnswerSubmission{
		{ID: seeded[0].ID, Answer: "b"},
		{ID: seeded[1].ID, Answer: "A"},
		{ID: 9999, Answer: "A"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 33, result.Percentage)
	require.Len(t, result.Feedback, 2)
	assert.True(t, result.Feedback[0].Correct)
	assert.Equal(t, "Basic addition.", result.Feedback[0].Explanation)
	assert.False(t, result.Feedback[1].Correct)
	assert.Equal(t, "C", result.Feedback[1].CorrectAnswer)
	assert.Equal(t, noExplanation, result.Feedback[1].Explanation)
}

func TestSubmitAnswersEmpty(t *testing.T) {
	svc, _ := newQuestionService(t)

	result, err := svc.SubmitAnswers(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.Percentage)
	assert.Empty(t, result.Feedback)
}

func TestQuestionStats(t *testing.T) {
	svc, _ := newQuestionService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.SubjectStats{
		{Subject: "History", Count: 1, Difficulties: []model.Difficulty{model.Medium}},
		{Subject: "Math", Count: 3, Difficulties: []model.Difficulty{model.Easy, model.Hard, model.Easy}},
	}, stats)
}

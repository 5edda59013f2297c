package repository

import (
	"context"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/repository/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []model.Question {
	return []model.Question{
		{Subject: "Science", Category: "Physics", Difficulty: model.Easy, Text: "q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Answer: "A"},
		{Subject: "Science", Category: "Biology", Difficulty: model.Hard, Text: "q2", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Answer: "B"},
		{Subject: "History", Category: "World History", Difficulty: model.Medium, Text: "q3", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Answer: "C"},
	}
}

func TestQuestionRepositoryFind(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuestionRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, sampleQuestions()))

	all, err := repo.Find(ctx, model.QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	science, err := repo.Find(ctx, model.QuestionFilter{Subject: "Science"})
	require.NoError(t, err)
	assert.Len(t, science, 2)

	hard, err := repo.Find(ctx, model.QuestionFilter{Subject: "Science", Difficulty: "Hard"})
	require.NoError(t, err)
	require.Len(t, hard, 1)
	assert.Equal(t, "q2", hard[0].Text)

	limited, err := repo.Find(ctx, model.QuestionFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestQuestionRepositoryFindByIDs(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuestionRepository(db)
	ctx := context.Background()
	seeded := testutil.SeedQuestions(t, db, sampleQuestions()...)

	byID, err := repo.FindByIDs(ctx, []uint{seeded[0].ID, seeded[2].ID, 999})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Equal(t, "q3", byID[seeded[2].ID].Text)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestQuestionRepositorySubjectDifficulties(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuestionRepository(db)
	testutil.SeedQuestions(t, db, sampleQuestions()...)

	rows, err := repo.SubjectDifficulties(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "History", rows[0].Subject)
	assert.Equal(t, model.Hard, rows[2].Difficulty)
}

func TestQuestionRepositoryUpdateAndDelete(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuestionRepository(db)
	ctx := context.Background()
	seeded := testutil.SeedQuestions(t, db, sampleQuestions()...)

	missing, err := repo.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	q, err := repo.FindByID(ctx, seeded[1].ID)
	require.NoError(t, err)
	require.NotNil(t, q)
	q.Answer = "D"
	q.Difficulty = model.Medium
	require.NoError(t, repo.Update(ctx, q))

	reloaded, err := repo.FindByID(ctx, seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "D", reloaded.Answer)
	assert.Equal(t, model.Medium, reloaded.Difficulty)

	deleted, err := repo.Delete(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err := repo.Find(ctx, model.QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

package service

import (
	"context"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/util"
	"istudy_lab_backend/pkg/tracing"
	"math"
	"strings"
)

const noExplanation = "No explanation available"

// QuestionStore 题库存储
type QuestionStore interface {
	Find(ctx context.Context, filter model.QuestionFilter) ([]model.Question, error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]model.Question, error)
	SubjectDifficulties(ctx context.Context) ([]model.Question, error)
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	Create(ctx context.Context, questions []model.Question) error
	Update(ctx context.Context, q *model.Question) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type QuestionService struct {
	Store QuestionStore
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{Store: store}
}

// ListQuestions 按条件获取题目，limit 未指定时取默认值
func (s *QuestionService) ListQuestions(ctx context.Context, filter model.QuestionFilter) (list []model.QuizQuestion, err error) {
	ctx, span := tracing.Start(ctx, "QuestionService.ListQuestions")
	defer func() { tracing.End(span, err) }()

	if filter.Limit <= 0 {
		filter.Limit = util.DefaultQuizLimit
	}

	questions, err := s.Store.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	list = make([]model.QuizQuestion, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		list = append(list, model.QuizQuestion{
			ID:          q.ID,
			Question:    q.Text,
			Options:     q.Options(),
			Answer:      q.Answer,
			Subject:     q.Subject,
			Category:    q.Category,
			Difficulty:  q.Difficulty,
			Explanation: q.Explanation,
		})
	}
	return list, nil
}

// SubmitAnswers 批改答案。找不到的题目不出现在反馈中，但计入总数。
func (s *QuestionService) SubmitAnswers(ctx context.Context, answers []model.AnswerSubmission) (result *model.QuizScore, err error) {
	ctx, span := tracing.Start(ctx, "QuestionService.SubmitAnswers")
	defer func() { tracing.End(span, err) }()

	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.ID)
	}
	questions, err := s.Store.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result = &model.QuizScore{
		Total:    len(answers),
		Feedback: make([]model.AnswerFeedback, 0, len(answers)),
	}
	for _, a := range answers {
		q, ok := questions[a.ID]
		if !ok {
			continue
		}

		correct := strings.EqualFold(strings.TrimSpace(a.Answer), q.Answer)
		if correct {
			result.Score++
		}
		explanation := q.Explanation
		if explanation == "" {
			explanation = noExplanation
		}
		result.Feedback = append(result.Feedback, model.AnswerFeedback{
			ID:            q.ID,
			Correct:       correct,
			CorrectAnswer: q.Answer,
			Explanation:   explanation,
		})
	}

	if result.Total > 0 {
		result.Percentage = int(math.Round(float64(result.Score) / float64(result.Total) * 100))
	}
	return result, nil
}

// Stats 每个科目的题目数量，Difficulties 按题目 ID 顺序列出每道题的难度
func (s *QuestionService) Stats(ctx context.Context) (stats []model.SubjectStats, err error) {
	ctx, span := tracing.Start(ctx, "QuestionService.Stats")
	defer func() { tracing.End(span, err) }()

	rows, err := s.Store.SubjectDifficulties(ctx)
	if err != nil {
		return nil, err
	}

	stats = make([]model.SubjectStats, 0)
	index := make(map[string]int)
	for _, q := range rows {
		i, ok := index[q.Subject]
		if !ok {
			i = len(stats)
			index[q.Subject] = i
			stats = append(stats, model.SubjectStats{Subject: q.Subject, Difficulties: []model.Difficulty{}})
		}
		stats[i].Count++
		stats[i].Difficulties = append(stats[i].Difficulties, q.Difficulty)
	}
	return stats, nil
}

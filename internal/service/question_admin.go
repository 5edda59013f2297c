package service

import (
	"context"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/util"
	"istudy_lab_backend/pkg/logger"
	"istudy_lab_backend/pkg/tracing"
	"strings"

	"go.uber.org/zap"
)

const questionNotFound = "Question not found"

var optionLetters = []string{"A", "B", "C", "D"}

// sampleQuestions 管理端一键添加的示例题目
var sampleQuestions = []model.QuestionInput{
	{Subject: "Maths", Question: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, Answer: "4", Explanation: "2 + 2 = 4.", Difficulty: model.Easy},
	{Subject: "Science", Question: "What planet is known as the Red Planet?", Options: []string{"Earth", "Mars", "Jupiter", "Venus"}, Answer: "Mars", Explanation: "Mars is called the Red Planet."},
	{Subject: "English", Question: "Which is a noun?", Options: []string{"Run", "Apple", "Quickly", "Blue"}, Answer: "Apple", Explanation: "Apple is a noun.", Difficulty: model.Easy},
	{Subject: "Maths", Question: "What is the square root of 9?", Options: []string{"1", "2", "3", "4"}, Answer: "3", Explanation: "The square root of 9 is 3."},
}

// normalizeAnswer 把选项原文转换为 A-D，其余输入只做去空格和大写
func normalizeAnswer(answer string, options []string) string {
	answer = strings.TrimSpace(answer)
	upper := strings.ToUpper(answer)
	for _, letter := range optionLetters {
		if upper == letter {
			return letter
		}
	}
	for i, opt := range options {
		if i < len(optionLetters) && strings.TrimSpace(opt) == answer {
			return optionLetters[i]
		}
	}
	return upper
}

func questionFromInput(input *model.QuestionInput) (*model.Question, error) {
	input.Question = strings.TrimSpace(input.Question)
	input.Answer = normalizeAnswer(input.Answer, input.Options)
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	q := &model.Question{
		Subject:     strings.TrimSpace(input.Subject),
		Text:        input.Question,
		OptionA:     input.Options[0],
		OptionB:     input.Options[1],
		OptionC:     input.Options[2],
		OptionD:     input.Options[3],
		Answer:      input.Answer,
		Explanation: input.Explanation,
		Category:    strings.TrimSpace(input.Category),
		Difficulty:  input.Difficulty,
	}
	if q.Subject == "" {
		q.Subject = model.DefaultSubject
	}
	if q.Category == "" {
		q.Category = model.DefaultSubject
	}
	if q.Difficulty == "" {
		q.Difficulty = model.Medium
	}
	return q, nil
}

func inputFromQuestion(q *model.Question) *model.QuestionInput {
	return &model.QuestionInput{
		Subject:     q.Subject,
		Question:    q.Text,
		Options:     q.Options(),
		Answer:      q.Answer,
		Explanation: q.Explanation,
		Category:    q.Category,
		Difficulty:  q.Difficulty,
	}
}

// AllQuestions 管理端查看全部题目（含答案），按 ID 排序
func (s *QuestionService) AllQuestions(ctx context.Context) (questions []model.Question, err error) {
	ctx, span := tracing.Start(ctx, "QuestionService.AllQuestions")
	defer func() { tracing.End(span, err) }()

	return s.Store.Find(ctx, model.QuestionFilter{})
}

func (s *QuestionService) CreateQuestion(ctx context.Context, input *model.QuestionInput) (q *model.Question, err error) {
	ctx, span := tracing.Start(ctx, "QuestionService.CreateQuestion")
	defer func() { tracing.End(span, err) }()

	if input == nil {
		return nil, util.NewValidationError("Missing required fields")
	}
	q, err = questionFromInput(input)
	if err != nil {
		return nil, err
	}

	created := []model.Question{*q}
	if err := s.Store.Create(ctx, created); err != nil {
		return nil, err
	}
	q = &created[0]

	logger.Log.Info("新增题目", zap.Uint("questionID", q.ID), zap.String("subject", q.Subject))
	return q, nil
}

// UpdateQuestion 合并请求中出现的字段后按新增规则整体校验
func (s *QuestionService) UpdateQuestion(ctx context.Context, id uint, patch *model.QuestionUpdate) (q *model.Question, err error) {
	ctx, span := tracing.Start(ctx, "QuestionService.UpdateQuestion")
	defer func() { tracing.End(span, err) }()

	existing, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, util.NewNotFoundError(questionNotFound)
	}

	merged := inputFromQuestion(existing)
	if patch != nil {
		applyQuestionUpdate(merged, patch)
	}
	updated, err := questionFromInput(merged)
	if err != nil {
		return nil, err
	}
	updated.BaseModel = existing.BaseModel

	if err := s.Store.Update(ctx, updated); err != nil {
		return nil, err
	}

	logger.Log.Info("更新题目", zap.Uint("questionID", id))
	return updated, nil
}

func applyQuestionUpdate(dst *model.QuestionInput, patch *model.QuestionUpdate) {
	if patch.Subject != nil {
		dst.Subject = *patch.Subject
	}
	if patch.Question != nil {
		dst.Question = *patch.Question
	}
	if patch.Options != nil {
		dst.Options = patch.Options
	}
	if patch.Answer != nil {
		dst.Answer = *patch.Answer
	}
	if patch.Explanation != nil {
		dst.Explanation = *patch.Explanation
	}
	if patch.Category != nil {
		dst.Category = *patch.Category
	}
	if patch.Difficulty != nil {
		dst.Difficulty = *patch.Difficulty
	}
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.Start(ctx, "QuestionService.DeleteQuestion")
	defer func() { tracing.End(span, err) }()

	deleted, err := s.Store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return util.NewNotFoundError(questionNotFound)
	}

	logger.Log.Info("删除题目", zap.Uint("questionID", id))
	return nil
}

// AddSampleQuestions 写入一组示例题目，重复调用会重复写入
func (s *QuestionService) AddSampleQuestions(ctx context.Context) (questions []model.Question, err error) {
	ctx, span := tracing.Start(ctx, "QuestionService.AddSampleQuestions")
	defer func() { tracing.End(span, err) }()

	questions = make([]model.Question, 0, len(sampleQuestions))
	for i := range sampleQuestions {
		input := sampleQuestions[i]
		input.Options = append([]string(nil), input.Options...)
		q, err := questionFromInput(&input)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}

	if err := s.Store.Create(ctx, questions); err != nil {
		return nil, err
	}
	logger.Log.Info("已添加示例题目", zap.Int("count", len(questions)))
	return questions, nil
}

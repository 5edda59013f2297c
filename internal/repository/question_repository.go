package repository

import (
	"context"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(ctx context.Context, questions []model.Question) error {
	if err := r.DB.WithContext(ctx).Create(&questions).Error; err != nil {
		return util.StoreError("create questions", err)
	}
	return nil
}

// Find 按科目/分类/难度过滤，limit <= 0 时不限制
func (r *QuestionRepository) Find(ctx context.Context, filter model.QuestionFilter) ([]model.Question, error) {
	query := r.DB.WithContext(ctx).Model(&model.Question{})
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var questions []model.Question
	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, util.StoreError("find questions", err)
	}
	return questions, nil
}

func (r *QuestionRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]model.Question, error) {
	result := make(map[uint]model.Question, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var questions []model.Question
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, util.StoreError("find questions by ids", err)
	}
	for _, q := range questions {
		result[q.ID] = q
	}
	return result, nil
}

// SubjectDifficulties 每道题的科目和难度，按科目、ID 排序
func (r *QuestionRepository) SubjectDifficulties(ctx context.Context) ([]model.Question, error) {
	var rows []model.Question
	err := r.DB.WithContext(ctx).
		Select("id", "subject", "difficulty").
		Order("subject ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, util.StoreError("list question difficulties", err)
	}
	return rows, nil
}

// FindByID 不存在时返回 (nil, nil)
func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).First(&q, id).Error
	if util.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, util.StoreError("find question", err)
	}
	return &q, nil
}

func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) error {
	if err := r.DB.WithContext(ctx).Save(q).Error; err != nil {
		return util.StoreError("update question", err)
	}
	return nil
}

// Delete 返回是否删除了记录
func (r *QuestionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.DB.WithContext(ctx).Delete(&model.Question{}, id)
	if result.Error != nil {
		return false, util.StoreError("delete question", result.Error)
	}
	return result.RowsAffected > 0, nil
}

package controller

import (
	"errors"
	"io"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/service"
	"istudy_lab_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminQuestionController struct {
	QuestionService *service.QuestionService
}

func NewAdminQuestionController(questionService *service.QuestionService) *AdminQuestionController {
	return &AdminQuestionController{QuestionService: questionService}
}

func parseQuestionID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "无效的题目ID")
		return 0, false
	}
	return uint(id), true
}

// @Summary 获取全部题目
// @Description 返回题库中的全部题目，包含答案（管理员权限）
// @Tags 题库管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 401 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /admin/questions [get]
func (c *AdminQuestionController) GetQuestions(ctx *gin.Context) {
	questions, err := c.QuestionService.AllQuestions(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err, questionsUnavailable)
		return
	}

	util.Success(ctx, questions)
}

// @Summary 新增题目
// @Description 新增一道单选题，answer 可以是 A-D 或选项原文（管理员权限）
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param question body model.QuestionInput true "题目信息"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req model.QuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			util.BadRequest(ctx, "Missing required fields")
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuestionService.CreateQuestion(ctx.Request.Context(), &req)
	if err != nil {
		util.HandleError(ctx, err, questionsUnavailable)
		return
	}

	util.Created(ctx, q)
}

// @Summary 更新题目
// @Description 只更新请求中出现的字段（管理员权限）
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param question body model.QuestionUpdate true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/questions/{id} [put]
func (c *AdminQuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	var req model.QuestionUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuestionService.UpdateQuestion(ctx.Request.Context(), id, &req)
	if err != nil {
		util.HandleError(ctx, err, questionsUnavailable)
		return
	}

	util.Success(ctx, q)
}

// @Summary 删除题目
// @Description 删除一道题目（管理员权限）
// @Tags 题库管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/questions/{id} [delete]
func (c *AdminQuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	if err := c.QuestionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err, questionsUnavailable)
		return
	}

	util.Success(ctx, gin.H{"message": "Question deleted"})
}

// @Summary 添加示例题目
// @Description 写入一组示例题目，便于本地调试（管理员权限）
// @Tags 题库管理
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=[]model.Question}
// @Router /admin/add-sample-questions [post]
func (c *AdminQuestionController) AddSampleQuestions(ctx *gin.Context) {
	questions, err := c.QuestionService.AddSampleQuestions(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err, questionsUnavailable)
		return
	}

	util.Created(ctx, questions)
}

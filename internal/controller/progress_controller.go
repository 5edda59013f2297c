package controller

import (
	"errors"
	"io"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/service"
	"istudy_lab_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const progressUnavailable = "Progress store is temporarily unavailable, please retry"

// ProgressController 处理学习进度相关的API请求
type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary 获取本周学习进度
// @Description 按周一至周日返回当前用户本周每天的进度及累计进度
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.WeeklyProgress}
// @Failure 401 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /progress/weekly [get]
func (c *ProgressController) GetWeeklyProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	weekly, err := c.ProgressService.GetWeeklyProgress(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err, progressUnavailable)
		return
	}

	util.Success(ctx, weekly)
}

// @Summary 记录学习进度
// @Description 追加一条学习/答题记录。字段缺省（或为 null）时使用默认值：quizzesCompleted=1，studyTime=5，其余为0；显式传 0 会按 0 记录，不会替换为默认值。携带 Idempotency-Key 时重复请求不会重复记录
// @Tags 学习进度
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param Idempotency-Key header string false "幂等键，最长64个字符"
// @Param progress body model.RecordProgressInput false "进度信息"
// @Success 201 {object} util.Response{data=model.ProgressEventView}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /progress/record [post]
func (c *ProgressController) RecordProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req model.RecordProgressInput
	// 允许空请求体，全部使用默认值
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}
	req.IdempotencyKey = ctx.GetHeader(util.IdempotencyHeader)

	event, err := c.ProgressService.RecordProgress(ctx.Request.Context(), user.UserID, &req)
	if err != nil {
		util.HandleError(ctx, err, progressUnavailable)
		return
	}

	util.Created(ctx, model.NewProgressEventView(event))
}

// @Summary 获取学习进度汇总
// @Description 汇总全部历史记录：测验总数、学习总时长、学习过的科目数、平均分
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ProgressSummary}
// @Failure 401 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /progress/summary [get]
func (c *ProgressController) GetProgressSummary(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.ProgressService.GetProgressSummary(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err, progressUnavailable)
		return
	}

	util.Success(ctx, summary)
}

// @Summary 获取答题记录
// @Description 某科目下的全部答题记录，最近的在前
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Param subject query string true "科目"
// @Success 200 {object} util.Response{data=[]model.QuestionAttempt}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /progress/questions [get]
func (c *ProgressController) GetQuestionHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	history, err := c.ProgressService.GetQuestionHistory(ctx.Request.Context(), user.UserID, ctx.Query("subject"))
	if err != nil {
		util.HandleError(ctx, err, progressUnavailable)
		return
	}

	util.Success(ctx, history)
}

// @Summary 获取测验进度
// @Description 根据答题记录重建某科目的测验进度，每题以最近一次作答为准
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Param subject query string true "科目"
// @Success 200 {object} util.Response{data=model.QuizProgress}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /progress/quiz-progress [get]
func (c *ProgressController) GetQuizProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.GetQuizProgress(ctx.Request.Context(), user.UserID, ctx.Query("subject"))
	if err != nil {
		util.HandleError(ctx, err, progressUnavailable)
		return
	}

	util.Success(ctx, progress)
}

package controller

import (
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/service"
	"istudy_lab_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

const questionsUnavailable = "Question bank is temporarily unavailable, please retry"

const maxQuizLimit = 100

type QuizController struct {
	QuestionService *service.QuestionService
}

func NewQuizController(questionService *service.QuestionService) *QuizController {
	return &QuizController{QuestionService: questionService}
}

type SubmitQuizRequest struct {
	Answers []model.AnswerSubmission `json:"answers" binding:"dive"`
}

// @Summary 获取测验题目
// @Description 按科目、分类、难度筛选题目
// @Tags 测验
// @Produce json
// @Param subject query string false "科目"
// @Param category query string false "分类"
// @Param difficulty query string false "难度" enums(Easy,Medium,Hard)
// @Param limit query int false "数量，默认10"
// @Success 200 {object} util.Response{data=[]model.QuizQuestion}
// @Failure 400 {object} util.Response
// @Router /quiz [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	filter := model.QuestionFilter{
		Subject:    ctx.Query("subject"),
		Category:   ctx.Query("category"),
		Difficulty: ctx.Query("difficulty"),
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > maxQuizLimit {
			util.BadRequest(ctx, "limit must be between 1 and 100")
			return
		}
		filter.Limit = limit
	}

	questions, err := c.QuestionService.ListQuestions(ctx.Request.Context(), filter)
	if err != nil {
		util.HandleError(ctx, err, questionsUnavailable)
		return
	}

	util.Success(ctx, questions)
}

// @Summary 提交测验答案
// @Description 批改答案并返回得分与每题反馈
// @Tags 测验
// @Accept json
// @Produce json
// @Param answers body SubmitQuizRequest true "答案列表"
// @Success 200 {object} util.Response{data=model.QuizScore}
// @Failure 400 {object} util.Response
// @Router /quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	score, err := c.QuestionService.SubmitAnswers(ctx.Request.Context(), req.Answers)
	if err != nil {
		util.HandleError(ctx, err, questionsUnavailable)
		return
	}

	util.Success(ctx, score)
}

// @Summary 题库统计
// @Description 每个科目的题目数量及难度分布
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response{data=[]model.SubjectStats}
// @Router /quiz/stats [get]
func (c *QuizController) GetStats(ctx *gin.Context) {
	stats, err := c.QuestionService.Stats(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err, questionsUnavailable)
		return
	}

	util.Success(ctx, stats)
}

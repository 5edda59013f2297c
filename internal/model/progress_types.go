package model

import "time"

// RecordProgressInput 记录学习进度的请求体。
// 数值字段为 nil 时使用默认值，显式的 0 原样保留。
// swagger:model RecordProgressInput
type RecordProgressInput struct {
	DailyProgress    *int                  `json:"dailyProgress" validate:"omitempty,min=0,max=100"`
	QuizzesCompleted *int                  `json:"quizzesCompleted" validate:"omitempty,min=0"` // 缺省为 1
	StudyTime        *int                  `json:"studyTime" validate:"omitempty,min=0"`        // 分钟，缺省为 5
	SubjectsStudied  []string              `json:"subjectsStudied" validate:"omitempty,dive,max=100"`
	Achievements     []string              `json:"achievements" validate:"omitempty,dive,max=255"`
	Score            *int                  `json:"score"`
	QuestionDetails  *QuestionDetailsInput `json:"questionDetails"`
	IdempotencyKey   string                `json:"-" validate:"omitempty,max=64"`
}

type QuestionDetailsInput struct {
	QuestionIndex  *int       `json:"questionIndex" validate:"omitempty,min=0"`
	IsCorrect      *bool      `json:"isCorrect"`
	Subject        string     `json:"subject" validate:"max=100"`
	Timestamp      *time.Time `json:"timestamp"`
	SelectedAnswer string     `json:"selectedAnswer"`
	CorrectAnswer  string     `json:"correctAnswer"`
	Explanation    string     `json:"explanation"`
}

// ProgressEventView 进度事件的对外表示
type ProgressEventView struct {
	ID               uint                 `json:"id"`
	UserID           uint                 `json:"userId"`
	Date             time.Time            `json:"date"`
	DailyProgress    int                  `json:"dailyProgress"`
	QuizzesCompleted int                  `json:"quizzesCompleted"`
	StudyTime        int                  `json:"studyTime"`
	SubjectsStudied  []string             `json:"subjectsStudied"`
	Achievements     []string             `json:"achievements"`
	Score            int                  `json:"score"`
	QuestionDetails  *QuestionDetailsView `json:"questionDetails,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

type QuestionDetailsView struct {
	QuestionIndex  *int       `json:"questionIndex,omitempty"`
	IsCorrect      *bool      `json:"isCorrect,omitempty"`
	Subject        string     `json:"subject"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
	SelectedAnswer string     `json:"selectedAnswer"`
	CorrectAnswer  string     `json:"correctAnswer"`
	Explanation    string     `json:"explanation"`
}

func NewProgressEventView(e *ProgressEvent) *ProgressEventView {
	v := &ProgressEventView{
		ID:               e.ID,
		UserID:           e.UserID,
		Date:             e.Date,
		DailyProgress:    e.DailyProgress,
		QuizzesCompleted: e.QuizzesCompleted,
		StudyTime:        e.StudyTime,
		SubjectsStudied:  nonNil(e.SubjectsStudied),
		Achievements:     nonNil(e.Achievements),
		Score:            e.Score,
		CreatedAt:        e.CreatedAt,
	}
	if e.HasQuestion() {
		q := e.Question
		v.QuestionDetails = &QuestionDetailsView{
			QuestionIndex:  q.QuestionIndex,
			IsCorrect:      q.IsCorrect,
			Subject:        q.Subject,
			Timestamp:      q.Timestamp,
			SelectedAnswer: q.SelectedAnswer,
			CorrectAnswer:  q.CorrectAnswer,
			Explanation:    q.Explanation,
		}
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// DayProgress 周视图中某一天的统计
type DayProgress struct {
	Day                string    `json:"day"`
	Date               time.Time `json:"date"`
	Progress           int       `json:"progress"`
	QuizzesCompleted   int       `json:"quizzesCompleted"`
	StudyTime          int       `json:"studyTime"`
	SubjectsStudied    []string  `json:"subjectsStudied"`
	CumulativeProgress int       `json:"cumulativeProgress"`
}

// WeeklyProgress 周一至周日的学习进度
type WeeklyProgress struct {
	Days          []DayProgress `json:"days"`
	TotalProgress int           `json:"totalProgress"`
	WeekStart     time.Time     `json:"weekStart"`
	WeekEnd       time.Time     `json:"weekEnd"`
}

// ProgressSummary 全部历史记录的汇总
type ProgressSummary struct {
	TotalQuizzes    int `json:"totalQuizzes"`
	TotalStudyTime  int `json:"totalStudyTime"` // 分钟
	SubjectsStudied int `json:"subjectsStudied"`
	AverageScore    int `json:"averageScore"`
}

// ProgressTotals 数据库聚合结果
type ProgressTotals struct {
	TotalQuizzes   int64
	TotalStudyTime int64
	AverageScore   float64
	EventCount     int64
}

// QuestionResultDetail 续答时展示的单题详情
type QuestionResultDetail struct {
	SelectedAnswer string `json:"selectedAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	Explanation    string `json:"explanation"`
}

// QuizProgress 根据答题事件重建的测验进度
type QuizProgress struct {
	CompletedQuestions []int                        `json:"completedQuestions"`
	QuestionResults    map[int]bool                 `json:"questionResults"`
	QuestionDetails    map[int]QuestionResultDetail `json:"questionDetails"`
	TotalScore         int                          `json:"totalScore"`
	TotalQuestions     int                          `json:"totalQuestions"`
}

// QuestionAttempt 某科目下的单次答题记录
type QuestionAttempt struct {
	QuestionIndex *int       `json:"questionIndex"`
	IsCorrect     *bool      `json:"isCorrect"`
	Timestamp     *time.Time `json:"timestamp"`
	Score         int        `json:"score"`
}

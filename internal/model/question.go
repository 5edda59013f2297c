package model

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

const DefaultSubject = "Computer Science"

// Question 题库中的单选题
// swagger:model Question
type Question struct {
	BaseModel
	Subject     string     `gorm:"size:100;not null;index;default:'Computer Science'" json:"subject"`
	Text        string     `gorm:"column:question;type:text;not null" json:"question"`
	OptionA     string     `gorm:"type:text;not null" json:"optionA"`
	OptionB     string     `gorm:"type:text;not null" json:"optionB"`
	OptionC     string     `gorm:"type:text;not null" json:"optionC"`
	OptionD     string     `gorm:"type:text;not null" json:"optionD"`
	Answer      string     `gorm:"size:1;not null" json:"answer"` // A/B/C/D
	Explanation string     `gorm:"type:text" json:"explanation"`
	Category    string     `gorm:"size:100;index;default:'Computer Science'" json:"category"`
	Difficulty  Difficulty `gorm:"size:10;index;default:'Medium'" json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}

// Options 按 A-D 顺序返回选项
func (q *Question) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// QuestionFilter 题目查询条件
type QuestionFilter struct {
	Subject    string
	Category   string
	Difficulty string
	Limit      int
}

// QuizQuestion 返回给答题页的题目
type QuizQuestion struct {
	ID          uint       `json:"id"`
	Question    string     `json:"question"`
	Options     []string   `json:"options"`
	Answer      string     `json:"answer"`
	Subject     string     `json:"subject"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Explanation string     `json:"explanation"`
}

type AnswerSubmission struct {
	ID     uint   `json:"id" binding:"required"`
	Answer string `json:"answer"`
}

type AnswerFeedback struct {
	ID            uint   `json:"id"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

type QuizScore struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
	Feedback   []AnswerFeedback `json:"feedback"`
}

// SubjectStats 科目维度的题目统计
type SubjectStats struct {
	Subject      string       `json:"subject"`
	Count        int          `json:"count"`
	Difficulties []Difficulty `json:"difficulties"`
}

// QuestionInput 管理端新增题目。answer 可以是 A-D，也可以是某个选项的原文。
// swagger:model QuestionInput
type QuestionInput struct {
	Subject     string     `json:"subject" validate:"max=100"`
	Question    string     `json:"question" validate:"required"`
	Options     []string   `json:"options" validate:"len=4,dive,required"`
	Answer      string     `json:"answer" validate:"required,oneof=A B C D"`
	Explanation string     `json:"explanation"`
	Category    string     `json:"category" validate:"max=100"`
	Difficulty  Difficulty `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
}

// QuestionUpdate 管理端修改题目，只更新请求中出现的字段
// swagger:model QuestionUpdate
type QuestionUpdate struct {
	Subject     *string     `json:"subject"`
	Question    *string     `json:"question"`
	Options     []string    `json:"options"`
	Answer      *string     `json:"answer"`
	Explanation *string     `json:"explanation"`
	Category    *string     `json:"category"`
	Difficulty  *Difficulty `json:"difficulty"`
}

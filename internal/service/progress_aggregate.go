package service

import (
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/util"
	"math"
	"sort"
	"time"
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

const maxCumulativeProgress = 100

// WeekBounds 返回 now 所在周的周一 00:00:00 和周日 23:59:59.999（now 的时区）
func WeekBounds(now time.Time) (time.Time, time.Time) {
	// 周一为 0，周日为 6
	offset := (int(now.Weekday()) + 6) % 7
	y, m, d := now.Date()
	start := time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())
	end := time.Date(y, m, d-offset+6, 23, 59, 59, int(999*time.Millisecond), now.Location())
	return start, end
}

// BuildWeeklyProgress 把一周内的事件归入周一到周日七个桶。
// 同一天的多条事件不累加，按时间顺序最后一条覆盖前面的值。
func BuildWeeklyProgress(events []model.ProgressEvent, now time.Time) *model.WeeklyProgress {
	start, end := WeekBounds(now)
	loc := now.Location()

	days := make([]model.DayProgress, len(weekdayNames))
	dayIndex := make(map[string]int, len(weekdayNames))
	for i, name := range weekdayNames {
		date := time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, loc)
		days[i] = model.DayProgress{
			Day:             name,
			Date:            date,
			SubjectsStudied: []string{},
		}
		dayIndex[date.Format(util.DateFormat)] = i
	}

	ordered := make([]model.ProgressEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	for _, e := range ordered {
		local := e.Date.In(loc)
		if local.Before(start) || local.After(end) {
			continue
		}
		i, ok := dayIndex[local.Format(util.DateFormat)]
		if !ok {
			continue
		}

		day := &days[i]
		day.Progress = e.DailyProgress
		day.QuizzesCompleted = e.QuizzesCompleted
		day.StudyTime = e.StudyTime
		day.SubjectsStudied = append([]string{}, e.SubjectsStudied...)
	}

	cumulative := 0
	for i := range days {
		if days[i].Progress > 0 {
			cumulative += days[i].Progress
		}
		if cumulative > maxCumulativeProgress {
			cumulative = maxCumulativeProgress
		}
		days[i].CumulativeProgress = cumulative
	}

	return &model.WeeklyProgress{
		Days:          days,
		TotalProgress: cumulative,
		WeekStart:     start,
		WeekEnd:       end,
	}
}

// BuildSummary 汇总全部历史事件；没有事件时各项为 0
func BuildSummary(totals *model.ProgressTotals, subjectSets [][]string) *model.ProgressSummary {
	distinct := make(map[string]struct{})
	for _, set := range subjectSets {
		for _, subject := range set {
			distinct[subject] = struct{}{}
		}
	}

	summary := &model.ProgressSummary{SubjectsStudied: len(distinct)}
	if totals == nil {
		return summary
	}

	summary.TotalQuizzes = int(totals.TotalQuizzes)
	summary.TotalStudyTime = int(totals.TotalStudyTime)
	if totals.EventCount > 0 {
		summary.AverageScore = roundHalfUp(totals.AverageScore)
	}
	return summary
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// ReconstructQuizProgress 按答题时间升序回放事件，同一题号后面的作答覆盖前面的，
// 因此每个题号保留的是最近一次作答。没有题号的事件忽略。
func ReconstructQuizProgress(events []model.ProgressEvent) *model.QuizProgress {
	ordered := make([]model.ProgressEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AttemptTime().Before(ordered[j].AttemptTime())
	})

	results := make(map[int]bool)
	details := make(map[int]model.QuestionResultDetail)
	for _, e := range ordered {
		q := e.Question
		if q.QuestionIndex == nil {
			continue
		}
		idx := *q.QuestionIndex
		results[idx] = q.IsCorrect != nil && *q.IsCorrect
		details[idx] = model.QuestionResultDetail{
			SelectedAnswer: q.SelectedAnswer,
			CorrectAnswer:  q.CorrectAnswer,
			Explanation:    q.Explanation,
		}
	}

	completed := make([]int, 0, len(results))
	score := 0
	for idx, correct := range results {
		completed = append(completed, idx)
		if correct {
			score++
		}
	}
	sort.Ints(completed)

	return &model.QuizProgress{
		CompletedQuestions: completed,
		QuestionResults:    results,
		QuestionDetails:    details,
		TotalScore:         score,
		TotalQuestions:     len(completed),
	}
}

// BuildQuestionHistory 保持输入顺序（最近的在前）
func BuildQuestionHistory(events []model.ProgressEvent) []model.QuestionAttempt {
	attempts := make([]model.QuestionAttempt, 0, len(events))
	for _, e := range events {
		attempts = append(attempts, model.QuestionAttempt{
			QuestionIndex: e.Question.QuestionIndex,
			IsCorrect:     e.Question.IsCorrect,
			Timestamp:     e.Question.Timestamp,
			Score:         e.Score,
		})
	}
	return attempts
}

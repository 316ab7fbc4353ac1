package dto

import "time"

// QuestionDTO is what the exam view renders. It deliberately has no answer key.
type QuestionDTO struct {
	ID      uint
	Text    string
	Options []string
}

type AttemptDTO struct {
	ID          uint
	Score       int
	Total       int
	SubmittedAt time.Time
}

type ExamResultDTO struct {
	AttemptID uint
	Score     int
	Total     int
}

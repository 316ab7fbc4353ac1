package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/model"
	"github.com/lshigami/examportal/internal/repository"
	"github.com/rs/zerolog/log"
)

type ExamService interface {
	GetQuestions() ([]dto.QuestionDTO, error)
	SubmitExam(username string, req dto.SubmitExamRequest) (*dto.ExamResultDTO, error)
	GetAttempts(username string) ([]dto.AttemptDTO, error)
}

type examService struct {
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
}

func NewExamService(questionRepo repository.QuestionRepository, attemptRepo repository.AttemptRepository) ExamService {
	return &examService{questionRepo: questionRepo, attemptRepo: attemptRepo}
}

func (s *examService) GetQuestions() ([]dto.QuestionDTO, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetQuestions: failed to load questions")
		return nil, fmt.Errorf("%w: load questions: %w", ErrStoreUnavailable, err)
	}

	resp := make([]dto.QuestionDTO, 0, len(questions))
	if err := copier.Copy(&resp, &questions); err != nil {
		return nil, fmt.Errorf("error preparing questions: %w", err)
	}
	return resp, nil
}

// SubmitExam scores the selections against the stored answer key and records the attempt.
func (s *examService) SubmitExam(username string, req dto.SubmitExamRequest) (*dto.ExamResultDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("SubmitExam: failed to load questions")
		return nil, fmt.Errorf("%w: load questions: %w", ErrStoreUnavailable, err)
	}
	if len(req.Selections) > len(questions) {
		return nil, fmt.Errorf("%w: %d selections for %d questions", ErrInvalidInput, len(req.Selections), len(questions))
	}

	attempt := model.Attempt{
		Username: username,
		Score:    Score(questions, req.Selections),
		Total:    len(questions),
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Str("username", username).Msg("SubmitExam: failed to record attempt")
		return nil, fmt.Errorf("%w: record attempt: %w", ErrStoreUnavailable, err)
	}

	log.Info().Str("username", username).Int("score", attempt.Score).Int("total", attempt.Total).Uint("attemptID", attempt.ID).Msg("Exam submitted")
	return &dto.ExamResultDTO{AttemptID: attempt.ID, Score: attempt.Score, Total: attempt.Total}, nil
}

func (s *examService) GetAttempts(username string) ([]dto.AttemptDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUsername(username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("GetAttempts: failed to load attempts")
		return nil, fmt.Errorf("%w: load attempts: %w", ErrStoreUnavailable, err)
	}

	resp := make([]dto.AttemptDTO, 0, len(attempts))
	if err := copier.Copy(&resp, &attempts); err != nil {
		return nil, fmt.Errorf("error preparing attempts: %w", err)
	}
	return resp, nil
}

// Score counts questions whose selection equals the stored answer.
// Selections are 1-based; 0 and missing entries are unanswered.
func Score(questions []model.Question, selections []int) int {
	score := 0
	for i, q := range questions {
		if i >= len(selections) {
			break
		}
		if selections[i] != 0 && selections[i] == q.Answer {
			score++
		}
	}
	return score
}

package service

import (
	"github.com/google/uuid"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/rs/zerolog/log"
)

type SessionState int

const (
	LoggedOut SessionState = iota
	LoggedIn
)

func (s SessionState) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

// Session tracks who is logged in and mediates every state-changing action.
// It is used from the UI goroutine only.
type Session struct {
	auth AuthService
	exam ExamService

	state    SessionState
	username string
	id       string
}

func NewSession(auth AuthService, exam ExamService) *Session {
	return &Session{auth: auth, exam: exam}
}

func (s *Session) State() SessionState { return s.state }

// CurrentUser returns the logged-in username.
func (s *Session) CurrentUser() (string, bool) {
	return s.username, s.state == LoggedIn
}

// Login authenticates and, on success, switches to LoggedIn. Any previous identity is replaced.
func (s *Session) Login(username, password string) error {
	req := dto.CredentialsRequest{Username: username, Password: password}
	req.Normalize()
	if err := s.auth.Authenticate(req); err != nil {
		log.Info().Err(err).Str("username", req.Username).Msg("Login failed")
		return err
	}

	s.state = LoggedIn
	s.username = req.Username
	s.id = uuid.NewString()
	log.Info().Str("username", s.username).Str("session_id", s.id).Msg("Logged in")
	return nil
}

// Register creates an account without logging in.
func (s *Session) Register(username, password string) error {
	return s.auth.Register(dto.CredentialsRequest{Username: username, Password: password})
}

func (s *Session) Logout() {
	if s.state == LoggedOut {
		return
	}
	log.Info().Str("username", s.username).Str("session_id", s.id).Msg("Logged out")
	s.state = LoggedOut
	s.username = ""
	s.id = ""
}

func (s *Session) Questions() ([]dto.QuestionDTO, error) {
	if s.state != LoggedIn {
		return nil, ErrNotLoggedIn
	}
	return s.exam.GetQuestions()
}

// SubmitExam scores selections (1-based, 0 for none) for the current user and records the attempt.
func (s *Session) SubmitExam(selections []int) (*dto.ExamResultDTO, error) {
	if s.state != LoggedIn {
		return nil, ErrNotLoggedIn
	}
	log.Debug().Str("session_id", s.id).Ints("selections", selections).Msg("Submitting exam")
	return s.exam.SubmitExam(s.username, dto.SubmitExamRequest{Selections: selections})
}

func (s *Session) Attempts() ([]dto.AttemptDTO, error) {
	if s.state != LoggedIn {
		return nil, ErrNotLoggedIn
	}
	return s.exam.GetAttempts(s.username)
}

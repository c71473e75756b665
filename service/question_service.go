package service

import (
	"context"
	"strings"

	"legalzen-backend/analyzer"
	"legalzen-backend/logging"
	"legalzen-backend/metrics"
	"legalzen-backend/repository"
)

// Question outcomes reported to metrics
const (
	OutcomeAnswered        = "answered"
	OutcomeEmptyQuestion   = "empty_question"
	OutcomeSessionNotFound = "session_not_found"
)

// QuestionService answers questions about previously analyzed documents
type QuestionService struct {
	analyzer *analyzer.Analyzer
	sessions *repository.SessionRepository
	logger   logging.Logger
	metrics  *metrics.Metrics
}

// QuestionServiceOption is a functional option for QuestionService
type QuestionServiceOption func(*QuestionService)

// QuestionWithAnalyzer sets the rule engine that answers questions
func QuestionWithAnalyzer(a *analyzer.Analyzer) QuestionServiceOption {
	return func(s *QuestionService) {
		s.analyzer = a
	}
}

// QuestionWithSessionRepository sets the store sessions are read from
func QuestionWithSessionRepository(repo *repository.SessionRepository) QuestionServiceOption {
	return func(s *QuestionService) {
		s.sessions = repo
	}
}

// QuestionWithLogger sets the logger
func QuestionWithLogger(l logging.Logger) QuestionServiceOption {
	return func(s *QuestionService) {
		s.logger = l
	}
}

// QuestionWithMetrics records question outcomes
func QuestionWithMetrics(m *metrics.Metrics) QuestionServiceOption {
	return func(s *QuestionService) {
		s.metrics = m
	}
}

// NewQuestionService creates a new question service
func NewQuestionService(opts ...QuestionServiceOption) *QuestionService {
	s := &QuestionService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.analyzer == nil {
		s.analyzer = analyzer.New()
	}
	if s.sessions == nil {
		s.sessions = repository.NewSessionRepository()
	}
	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	return s
}

// AskRequest represents a question about a stored document.
// An empty SessionKey selects the most recent session.
type AskRequest struct {
	Question   string
	SessionKey string
}

// AskResult represents the answer and the session it was drawn from
type AskResult struct {
	Answer     string
	SessionKey string
}

// Ask answers a question against the document text of a session
func (s *QuestionService) Ask(ctx context.Context, req AskRequest) (*AskResult, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		s.count(OutcomeEmptyQuestion)
		return nil, ErrEmptyQuestion
	}

	s.logger.Info("question received",
		logging.String("question", truncate(question, 50)),
		logging.String("session_key", req.SessionKey),
	)

	key := req.SessionKey
	if key == "" {
		if latest, ok := s.sessions.Latest(); ok {
			key = latest.Key
			s.logger.Info("using most recent session", logging.String("session_key", key))
		}
	}

	session, ok := s.sessions.Get(key)
	if !ok {
		s.count(OutcomeSessionNotFound)
		return nil, ErrSessionNotFound
	}

	answer := s.analyzer.Answer(question, session.DocumentText)
	s.count(OutcomeAnswered)

	return &AskResult{Answer: answer, SessionKey: key}, nil
}

func (s *QuestionService) count(outcome string) {
	if s.metrics != nil {
		s.metrics.IncQuestion(outcome)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

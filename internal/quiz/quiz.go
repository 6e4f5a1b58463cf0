// Package quiz grades quiz submissions against the catalog questions and
// keeps per-session statistics in an attempt store.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"topologia/internal/storage"
	"topologia/pkg"
	"topologia/src/logger"
)

var (
	// ErrTooManyAnswers indicates more answers than questions.
	ErrTooManyAnswers = errors.New("quiz: more answers than questions")
	// ErrSessionRequired indicates a stats lookup without a session id.
	ErrSessionRequired = errors.New("quiz: session_id is required")
)

// Grade scores answers against questions. Missing or negative answers count
// as wrong.
func Grade(questions []pkg.QuizQuestion, answers []int) (pkg.QuizResult, error) {
	if len(answers) > len(questions) {
		return pkg.QuizResult{}, fmt.Errorf("%w: %d > %d", ErrTooManyAnswers, len(answers), len(questions))
	}

	res := pkg.QuizResult{
		Total:   len(questions),
		Answers: make([]pkg.AnswerResult, len(questions)),
	}
	for i, q := range questions {
		selected := -1
		if i < len(answers) && answers[i] >= 0 {
			selected = answers[i]
		}
		ok := selected == q.Correct
		if ok {
			res.Score++
		}
		res.Answers[i] = pkg.AnswerResult{
			QuestionID: q.ID,
			Question:   q.Question,
			Selected:   selected,
			Correct:    q.Correct,
			IsCorrect:  ok,
		}
	}
	if res.Total > 0 {
		res.Percentage = float64(res.Score*100) / float64(res.Total)
	}
	res.Message = scoreMessage(res.Percentage)
	res.Feedback = feedback(res.Percentage)

	return res, nil
}

func scoreMessage(pct float64) string {
	switch {
	case pct == 100:
		return "¡Excelente! ¡Dominas la topología de conjuntos! 🏆"
	case pct >= 80:
		return "¡Muy bien! Tienes un gran conocimiento de topología. 🌟"
	case pct >= 60:
		return "¡Bien! Pero aún puedes mejorar. Revisa los conceptos. 📚"
	case pct >= 40:
		return "Necesitas repasar algunos conceptos fundamentales. 📖"
	default:
		return "Te recomendamos estudiar los conceptos antes de reintentar. 💪"
	}
}

func feedback(pct float64) string {
	switch {
	case pct >= 80:
		return "Excelente dominio de los conceptos fundamentales de topología. Estás listo para temas avanzados como espacios de Hilbert y variedades topológicas."
	case pct >= 60:
		return "Buen manejo de los conceptos básicos. Te recomendamos profundizar en interior, clausura y frontera antes de avanzar."
	default:
		return "Recomendamos repasar los conceptos fundamentales: axiomas de topología, conjuntos abiertos y cerrados, y las operaciones topológicas básicas."
	}
}

// Service grades submissions and records them per session
type Service struct {
	questions []pkg.QuizQuestion
	store     storage.AttemptStore
	now       func() time.Time
}

func NewService(questions []pkg.QuizQuestion, store storage.AttemptStore) *Service {
	return &Service{questions: questions, store: store, now: time.Now}
}

// Submit grades sub and stores the attempt. A new session id is issued when
// sub carries none.
func (s *Service) Submit(ctx context.Context, sub pkg.QuizSubmission) (pkg.QuizResult, error) {
	res, err := Grade(s.questions, sub.Answers)
	if err != nil {
		return pkg.QuizResult{}, err
	}

	res.SessionID = sub.SessionID
	if res.SessionID == "" {
		res.SessionID = uuid.NewString()
	}
	res.AttemptID = uuid.NewString()

	attempt := pkg.QuizAttempt{
		ID:        res.AttemptID,
		SessionID: res.SessionID,
		Score:     res.Score,
		Total:     res.Total,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.SaveAttempt(ctx, attempt); err != nil {
		return pkg.QuizResult{}, fmt.Errorf("failed to record attempt: %w", err)
	}

	logger.Info().
		Str("session_id", res.SessionID).
		Int("score", res.Score).
		Int("total", res.Total).
		Msg("Quiz attempt recorded")

	return res, nil
}

// Stats summarises the attempts of a session: count, best score and the
// average score rounded to one decimal.
func (s *Service) Stats(ctx context.Context, sessionID string) (pkg.QuizStats, error) {
	if sessionID == "" {
		return pkg.QuizStats{}, ErrSessionRequired
	}

	attempts, err := s.store.ListAttempts(ctx, sessionID)
	if err != nil {
		return pkg.QuizStats{}, fmt.Errorf("failed to load attempts: %w", err)
	}

	stats := pkg.QuizStats{SessionID: sessionID, Attempts: len(attempts)}
	if len(attempts) == 0 {
		return stats, nil
	}

	sum := 0
	for _, a := range attempts {
		sum += a.Score
		stats.Best = max(stats.Best, a.Score)
	}
	stats.Average = math.Round(float64(sum)/float64(len(attempts))*10) / 10

	logger.Debug().
		Str("session_id", sessionID).
		Str("last_attempt", humanize.Time(attempts[len(attempts)-1].CreatedAt)).
		Msg("Quiz stats computed")

	return stats, nil
}

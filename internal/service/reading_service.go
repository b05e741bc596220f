package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"astro-reading/internal/domain"
)

const (
	defaultSessionTTL = time.Hour
	timeOfBirthLayout = "15:04"

	// AnswerDisclaimer acompaña cada respuesta.
	AnswerDisclaimer = "Note: For serious decisions, use practical research and professional advice."
)

var (
	ErrMissingField   = errors.New("missing required field")
	ErrDateOutOfRange = errors.New("birth date out of range")
	ErrInvalidTime    = errors.New("invalid birth time")
	ErrRateLimited    = errors.New("rate limited")
	ErrEmptySessionID = errors.New("session id is required")
)

var (
	defaultMinBirthDay = time.Date(1800, time.January, 1, 0, 0, 0, 0, time.UTC)
	defaultMaxBirthDay = time.Date(2200, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// ReadingOptions ajusta la validacion y la vida de la sesion.
type ReadingOptions struct {
	SessionTTL   time.Duration
	MinBirthDate time.Time
	MaxBirthDate time.Time
}

// ReadingService es la capa que rodea al motor: valida el formulario, guarda
// el perfil durante la sesion y recalcula outlook/respuestas a pedido.
type ReadingService struct {
	logger   *zap.Logger
	store    SessionStore
	limiter  QuestionRateLimiter
	answerer QuestionAnswerer
	opts     ReadingOptions
	now      func() time.Time
	newID    func() string
}

func NewReadingService(logger *zap.Logger, store SessionStore, limiter QuestionRateLimiter, answerer QuestionAnswerer, opts ReadingOptions) *ReadingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = NewMemorySessionStore()
	}
	if limiter == nil {
		limiter = NewQuestionRateLimiter(10*time.Minute, 20)
	}
	if answerer.pickTip == nil {
		answerer = DefaultQuestionAnswerer
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	if opts.MinBirthDate.IsZero() {
		opts.MinBirthDate = defaultMinBirthDay
	}
	if opts.MaxBirthDate.IsZero() {
		opts.MaxBirthDate = defaultMaxBirthDay
	}
	return &ReadingService{
		logger:   logger,
		store:    store,
		limiter:  limiter,
		answerer: answerer,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// CreateReading valida los datos de nacimiento, construye el perfil y abre la sesion.
func (s *ReadingService) CreateReading(ctx context.Context, details domain.BirthDetails) (domain.Reading, error) {
	if err := s.validate(details); err != nil {
		return domain.Reading{}, err
	}

	profile, err := BuildProfile(details.Name, details.Date, details.Time, details.Place)
	if err != nil {
		return domain.Reading{}, err
	}

	now := s.now()
	session := domain.ReadingSession{
		ID:        s.newID(),
		Profile:   profile,
		ExpiresAt: now.Add(s.opts.SessionTTL),
		CreatedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return domain.Reading{}, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("reading created",
		zap.String("session_id", session.ID),
		zap.String("sign", string(profile.Sign)),
		zap.String("vibe", profile.Vibe),
	)

	return domain.Reading{
		SessionID: session.ID,
		Profile:   profile,
		Outlook:   GenerateOutlook(profile),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// GetReading devuelve el perfil guardado con el outlook recalculado.
func (s *ReadingService) GetReading(ctx context.Context, sessionID string) (domain.Reading, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.Reading{}, err
	}
	return domain.Reading{
		SessionID: session.ID,
		Profile:   session.Profile,
		Outlook:   GenerateOutlook(session.Profile),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// AskQuestion responde una pregunta libre con el perfil de la sesion.
// Una pregunta vacia cae en el bucket general.
func (s *ReadingService) AskQuestion(ctx context.Context, sessionID, question string) (domain.Answer, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.Answer{}, err
	}
	if !s.limiter.Allow(session.ID) {
		return domain.Answer{}, ErrRateLimited
	}

	topic, text := s.answerer.Answer(question, session.Profile)
	s.logger.Debug("question answered",
		zap.String("session_id", session.ID),
		zap.String("topic", string(topic)),
	)
	return domain.Answer{
		SessionID:  session.ID,
		Question:   question,
		Topic:      topic,
		Text:       text,
		Disclaimer: AnswerDisclaimer,
	}, nil
}

// EndReading descarta la sesion junto con su cuota de preguntas.
func (s *ReadingService) EndReading(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrEmptySessionID
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.limiter.Forget(sessionID)
	return nil
}

func (s *ReadingService) load(ctx context.Context, sessionID string) (domain.ReadingSession, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.ReadingSession{}, ErrEmptySessionID
	}
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			s.logger.Error("load session failed", zap.String("session_id", sessionID), zap.Error(err))
		}
		return domain.ReadingSession{}, err
	}
	return session, nil
}

func (s *ReadingService) validate(details domain.BirthDetails) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", details.Name},
		{"date", details.Date},
		{"time", details.Time},
		{"place", details.Place},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	d, err := time.Parse(birthDateLayout, details.Date)
	if err != nil {
		return fmt.Errorf("%w: birth date %q", ErrInvalidInput, details.Date)
	}
	if d.Before(s.opts.MinBirthDate) || d.After(s.opts.MaxBirthDate) {
		return fmt.Errorf("%w: %s not in [%s, %s]", ErrDateOutOfRange, details.Date,
			s.opts.MinBirthDate.Format(isoDateLayout), s.opts.MaxBirthDate.Format(isoDateLayout))
	}
	if _, err := time.Parse(timeOfBirthLayout, details.Time); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, details.Time)
	}
	return nil
}

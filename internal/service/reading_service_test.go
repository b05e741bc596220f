package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"astro-reading/internal/domain"
)

type denyLimiter struct{}

func (denyLimiter) Allow(string) bool { return false }
func (denyLimiter) Forget(string) {}

func newTestReadingService(t *testing.T) *ReadingService {
	t.Helper()
	svc := NewReadingService(zap.NewNop(), NewMemorySessionStore(), nil, NewQuestionAnswerer(func(int) int { return 0 }), ReadingOptions{})
	ids := 0
	svc.newID = func() string {
		ids++
		return "session-" + string(rune('0'+ids))
	}
	return svc
}

func validDetails() domain.BirthDetails {
	return domain.BirthDetails{Name: "Asha", Date: "2024-03-21", Time: "09:00", Place: "Pune"}
}

func TestReadingService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestReadingService(t)

	reading, err := svc.CreateReading(ctx, validDetails())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if reading.SessionID != "session-1" {
		t.Fatalf("unexpected session id %q", reading.SessionID)
	}
	want, _ := BuildProfile("Asha", "2024-03-21", "09:00", "Pune")
	if !reflect.DeepEqual(reading.Profile, want) {
		t.Fatalf("profile mismatch:\n%+v\n%+v", reading.Profile, want)
	}
	if len(reading.Outlook) != 5 {
		t.Fatalf("expected 5 outlook entries, got %d", len(reading.Outlook))
	}
	if !reading.ExpiresAt.After(time.Now().UTC()) {
		t.Fatalf("expected expiry in the future, got %v", reading.ExpiresAt)
	}

	again, err := svc.GetReading(ctx, reading.SessionID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(again.Outlook, reading.Outlook) || !reflect.DeepEqual(again.Profile, reading.Profile) {
		t.Fatalf("stored reading differs from created reading")
	}
}

func TestReadingService_Validation(t *testing.T) {
	svc := newTestReadingService(t)
	svc.opts.MinBirthDate = time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.opts.MaxBirthDate = time.Date(2200, 12, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		modify func(*domain.BirthDetails)
		want   error
	}{
		{"empty name", func(d *domain.BirthDetails) { d.Name = "  " }, ErrMissingField},
		{"empty place", func(d *domain.BirthDetails) { d.Place = "" }, ErrMissingField},
		{"empty time", func(d *domain.BirthDetails) { d.Time = "" }, ErrMissingField},
		{"empty date", func(d *domain.BirthDetails) { d.Date = "" }, ErrMissingField},
		{"bad date", func(d *domain.BirthDetails) { d.Date = "2024/03/21" }, ErrInvalidInput},
		{"too old", func(d *domain.BirthDetails) { d.Date = "1799-12-31" }, ErrDateOutOfRange},
		{"too late", func(d *domain.BirthDetails) { d.Date = "2201-01-01" }, ErrDateOutOfRange},
		{"bad time", func(d *domain.BirthDetails) { d.Time = "25:61" }, ErrInvalidTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			details := validDetails()
			tc.modify(&details)
			if _, err := svc.CreateReading(context.Background(), details); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	for _, date := range []string{"1800-01-01", "2200-12-31"} {
		details := validDetails()
		details.Date = date
		if _, err := svc.CreateReading(context.Background(), details); err != nil {
			t.Fatalf("boundary date %s should be accepted, got %v", date, err)
		}
	}
}

func TestReadingService_AskQuestion(t *testing.T) {
	ctx := context.Background()
	svc := newTestReadingService(t)
	reading, err := svc.CreateReading(ctx, validDetails())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	answer, err := svc.AskQuestion(ctx, reading.SessionID, "Should I take that job?")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if answer.Topic != domain.TopicCareer {
		t.Fatalf("expected career topic, got %s", answer.Topic)
	}
	if !strings.HasPrefix(answer.Text, "As a Aries (Fire element)") {
		t.Fatalf("unexpected answer text %q", answer.Text)
	}
	if answer.Disclaimer != AnswerDisclaimer {
		t.Fatalf("expected disclaimer, got %q", answer.Disclaimer)
	}

	empty, err := svc.AskQuestion(ctx, reading.SessionID, "")
	if err != nil {
		t.Fatalf("empty question should fall back, got %v", err)
	}
	if empty.Topic != domain.TopicGeneral {
		t.Fatalf("expected general topic, got %s", empty.Topic)
	}
}

func TestReadingService_SessionErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestReadingService(t)

	if _, err := svc.GetReading(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.AskQuestion(ctx, " ", "job?"); !errors.Is(err, ErrEmptySessionID) {
		t.Fatalf("expected ErrEmptySessionID, got %v", err)
	}
	if err := svc.EndReading(ctx, ""); !errors.Is(err, ErrEmptySessionID) {
		t.Fatalf("expected ErrEmptySessionID, got %v", err)
	}

	reading, _ := svc.CreateReading(ctx, validDetails())
	if err := svc.EndReading(ctx, reading.SessionID); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if _, err := svc.GetReading(ctx, reading.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ended session gone, got %v", err)
	}
}

func TestReadingService_RateLimited(t *testing.T) {
	ctx := context.Background()
	svc := NewReadingService(zap.NewNop(), nil, denyLimiter{}, QuestionAnswerer{}, ReadingOptions{})
	reading, err := svc.CreateReading(ctx, validDetails())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.AskQuestion(ctx, reading.SessionID, "love?"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestReadingService_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	svc := NewReadingService(zap.NewNop(), nil, nil, QuestionAnswerer{}, ReadingOptions{SessionTTL: time.Millisecond})
	reading, err := svc.CreateReading(ctx, validDetails())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := svc.GetReading(ctx, reading.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestReadingService_EndReadingReleasesQuota(t *testing.T) {
	ctx := context.Background()
	limiter := NewQuestionRateLimiter(time.Hour, 5).(*sessionQuestionLimiter)
	svc := NewReadingService(zap.NewNop(), nil, limiter, QuestionAnswerer{}, ReadingOptions{})

	for i := 0; i < 100; i++ {
		reading, err := svc.CreateReading(ctx, validDetails())
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if _, err := svc.AskQuestion(ctx, reading.SessionID, "any travel plans?"); err != nil {
			t.Fatalf("ask failed: %v", err)
		}
		if err := svc.EndReading(ctx, reading.SessionID); err != nil {
			t.Fatalf("end failed: %v", err)
		}
	}
	if n := len(limiter.sessions); n != 0 {
		t.Fatalf("expected no limiter keys after ended readings, got %d", n)
	}
}

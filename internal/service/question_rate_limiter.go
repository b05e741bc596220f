package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuestionRateLimiter limita cuantas preguntas puede hacer una sesion de lectura.
// Forget se llama al cerrar la sesion para que su cuota no la sobreviva.
type QuestionRateLimiter interface {
	Allow(sessionID string) bool
	Forget(sessionID string)
}

type sessionQuestionLimiter struct {
	mu       sync.Mutex
	window   time.Duration
	max      int
	sessions map[string][]time.Time
	now      func() time.Time
}

// NewQuestionRateLimiter crea un limitador en memoria: max preguntas por sesion
// dentro de una ventana deslizante.
func NewQuestionRateLimiter(window time.Duration, max int) QuestionRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &sessionQuestionLimiter{
		window:   window,
		max:      max,
		sessions: make(map[string][]time.Time),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (l *sessionQuestionLimiter) Allow(sessionID string) bool {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	l.pruneLocked(cutoff)

	asked := l.sessions[sessionID]
	if len(asked) >= l.max {
		return false
	}
	l.sessions[sessionID] = append(asked, l.now())
	return true
}

func (l *sessionQuestionLimiter) Forget(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sessions, strings.TrimSpace(sessionID))
}

// pruneLocked recorta las preguntas fuera de la ventana y borra las sesiones
// que quedan sin ninguna; requiere l.mu tomado.
func (l *sessionQuestionLimiter) pruneLocked(cutoff time.Time) {
	for id, asked := range l.sessions {
		kept := asked[:0]
		for _, ts := range asked {
			if ts.After(cutoff) {
				kept = append(kept, ts)
			}
		}
		if len(kept) == 0 {
			delete(l.sessions, id)
			continue
		}
		l.sessions[id] = kept
	}
}

// El contador vive lo mismo que la ventana; EXPIRE solo se fija en el primer INCR.
const redisQuestionAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisLimiterClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisQuestionRateLimiter struct {
	client redisLimiterClient
	window time.Duration
	max    int
	prefix string
}

func NewRedisQuestionRateLimiter(client *redis.Client, window time.Duration, max int) QuestionRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisQuestionRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "reading:session:questions:",
	}
}

// Allow deja pasar si Redis falla; preferimos responder a cortar la sesion.
func (l *redisQuestionRateLimiter) Allow(sessionID string) bool {
	if l == nil || l.client == nil {
		return true
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisQuestionAllowScript, []string{l.prefix + sessionID}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}

// Forget es best-effort: si falla, la clave vence sola con la ventana.
func (l *redisQuestionRateLimiter) Forget(sessionID string) {
	if l == nil || l.client == nil {
		return
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_ = l.client.Del(ctx, l.prefix+sessionID).Err()
}

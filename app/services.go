package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ── Singleton ────────────────────────────────────────────────────────────────

// Clock is a process-wide time source. One instance serves every request.
type Clock struct{}

func (c *Clock) Now() time.Time { return time.Now() }

// ── Scoped ───────────────────────────────────────────────────────────────────

// RequestTracer carries a correlation id for one unit of work. Scoped: every
// request gets its own tracer, and every resolution within the request sees
// the same one.
type RequestTracer struct {
	once sync.Once
	id   string
}

// ID returns the tracer's correlation id, generated on first use.
func (t *RequestTracer) ID() string {
	t.once.Do(func() { t.id = uuid.NewString() })
	return t.id
}

// WelcomeService composes the singleton clock and the request tracer.
// Scoped, so its injected tracer is the request's own.
type WelcomeService struct {
	Clock  *Clock         `inject:""`
	Tracer *RequestTracer `inject:""`
}

// Greeting renders the welcome message for a visitor.
func (s *WelcomeService) Greeting(name string) string {
	return fmt.Sprintf("hello %s, it is %s", name, s.Clock.Now().Format(time.Kitchen))
}

// ── Transient, registered under two interface keys ───────────────────────────

// Mailer sends a message by mail.
type Mailer interface {
	Mail(to, msg string) string
}

// Texter sends a message by text.
type Texter interface {
	Text(to, msg string) string
}

// Notifier implements both delivery channels. Transient and registered under
// both Mailer and Texter, so each resolution — under either key — yields a
// fresh instance.
type Notifier struct {
	Tracer *RequestTracer `inject:""`
}

func (n *Notifier) Mail(to, msg string) string {
	return fmt.Sprintf("mail to %s: %s [trace %s]", to, msg, n.Tracer.ID())
}

func (n *Notifier) Text(to, msg string) string {
	return fmt.Sprintf("text to %s: %s [trace %s]", to, msg, n.Tracer.ID())
}

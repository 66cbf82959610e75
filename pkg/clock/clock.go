// Package clock supplies the current time in the user's local calendar.
package clock

import (
	"sync"
	"time"

	"github.com/fatflowers/prayerbook/pkg/config"
	"go.uber.org/fx"
)

// DateLayout is the calendar-day format used by usage records.
const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

// Local reads the wall clock in a fixed location.
type Local struct {
	loc *time.Location
}

func NewLocal(loc *time.Location) *Local {
	if loc == nil {
		loc = time.Local
	}
	return &Local{loc: loc}
}

func (c *Local) Now() time.Time { return time.Now().In(c.loc) }

// Today formats the current calendar day of c.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// Manual is a settable clock for tests and replays.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

func NewManual(now time.Time) *Manual { return &Manual{now: now} }

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Set(now time.Time) {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
}

func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

func newFromConfig(cfg *config.Config) (Clock, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return NewLocal(loc), nil
}

var Module = fx.Options(
	fx.Provide(newFromConfig),
)

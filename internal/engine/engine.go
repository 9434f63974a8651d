// Package engine implements the sprint, category and entry rules on top
// of a persistence port. It owns identifier generation, the active-sprint
// resolution, timeline grouping and report rendering; it performs no file
// or terminal I/O.
package engine

import (
	"fmt"
	"time"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/util"
)

// Engine applies the application rules over a Store.
type Engine struct {
	store Store
	now   func() time.Time
}

// New returns an Engine over store using the system clock.
func New(store Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// today is the engine's view of the current date, used by the
// active-sprint rule.
func (e *Engine) today() string {
	return e.now().Format(config.DateFormat)
}

// newID builds a prefixed identifier from the current clock reading.
func (e *Engine) newID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, e.now().UnixNano())
}

// newCategoryID embeds a slug of the name so the id stays readable.
func (e *Engine) newCategoryID(name string) string {
	return fmt.Sprintf("cat-%s-%d", util.Slugify(name), e.now().UnixMilli())
}

// validDate reports whether value is a zero-padded YYYY-MM-DD date.
// Every ordering and range rule compares dates as strings, which is only
// sound for this exact shape.
func validDate(value string) bool {
	_, err := time.Parse(config.DateFormat, value)
	return err == nil
}

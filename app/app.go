// Package app is the shell around the five levels: it owns the shared tiers,
// the active level and the show-work toggle.
package app

import (
	"log"
	"time"

	"github.com/lixenwraith/regroup/engine"
	"github.com/lixenwraith/regroup/event"
	"github.com/lixenwraith/regroup/level"
)

// Options configures a new App
type Options struct {
	StartLevel level.ID
	ShowWork   bool
	BreakDelay time.Duration
	Locale     string
}

// App holds the active level and app-wide toggles
//
// Not safe for concurrent use: every method runs on the event loop goroutine
type App struct {
	queue *event.Queue
	clock engine.TimeProvider

	tiers    level.Tiers
	active   level.Level
	showWork bool

	breakDelay time.Duration
	formatter  *level.Formatter

	// generation increments on every level selection
	generation uint64
}

// New creates an app with the start level active
func New(queue *event.Queue, clock engine.TimeProvider, opts Options) *App {
	if clock == nil {
		clock = engine.NewSystemTimeProvider()
	}
	a := &App{
		queue:      queue,
		clock:      clock,
		tiers:      level.NewTiers(),
		showWork:   opts.ShowWork,
		breakDelay: opts.BreakDelay,
		formatter:  level.NewFormatter(opts.Locale),
	}
	a.install(opts.StartLevel)
	return a
}

// Level returns the active level
func (a *App) Level() level.Level { return a.active }

// LevelID returns the active level's ID
func (a *App) LevelID() level.ID { return a.active.Info().ID }

// Tiers returns the shared tiers
func (a *App) Tiers() level.Tiers { return a.tiers }

// ShowWork reports whether the work expression is displayed
func (a *App) ShowWork() bool { return a.showWork }

// Formatter returns the number formatter for the configured locale
func (a *App) Formatter() *level.Formatter { return a.formatter }

// Clock returns the time source driving transitions
func (a *App) Clock() engine.TimeProvider { return a.clock }

// Generation returns a counter that changes whenever the level instance is replaced
func (a *App) Generation() uint64 { return a.generation }

// SelectLevel activates id, emptying every tier and discarding level-local
// state, including any break in flight. Selecting the active level again
// restarts it. Unknown IDs select level 1
func (a *App) SelectLevel(id level.ID) {
	from := a.LevelID()
	if pending := a.active.Breaker(); pending != nil && pending.Busy() {
		log.Printf("app: dropping pending break of level %d", from)
	}
	a.install(id)
	a.emit(event.EventLevelSelected, &event.LevelPayload{From: int(from), To: int(a.LevelID())})
	log.Printf("app: level %d -> %d", from, a.LevelID())
}

func (a *App) install(id level.ID) {
	a.tiers.ResetAll()
	a.active = level.New(id, a.tiers, level.Env{
		Queue:      a.queue,
		Clock:      a.clock,
		BreakDelay: a.breakDelay,
	})
	a.generation++
}

// ToggleShowWork flips the show-work flag; tiers are not touched
func (a *App) ToggleShowWork() {
	a.showWork = !a.showWork
	a.emit(event.EventShowWorkToggled, &event.ShowWorkPayload{Enabled: a.showWork})
}

// Dispatch routes an action to the active level
func (a *App) Dispatch(act level.Action) bool {
	return a.active.Apply(act)
}

// Update advances the active level's timed transitions
// Breaks started by replaced levels are never completed: their breaker was
// discarded along with the level instance
func (a *App) Update() bool {
	return a.active.Update()
}

// Work returns the decomposition expression when show-work is on
func (a *App) Work() (string, bool) {
	if !a.showWork {
		return "", false
	}
	return a.active.Work(a.formatter)
}

// SetLocale replaces the number formatter
func (a *App) SetLocale(locale string) {
	a.formatter = level.NewFormatter(locale)
}

// SetBreakDelay changes the delay for subsequent breaks, including on the
// active level; a break already running keeps its deadline
func (a *App) SetBreakDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	a.breakDelay = d
	if b := a.active.Breaker(); b != nil {
		b.SetDelay(d)
	}
}

func (a *App) emit(t event.EventType, payload any) {
	if a.queue != nil {
		a.queue.Emit(t, payload)
	}
}

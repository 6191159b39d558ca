package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/regroup/app"
	"github.com/lixenwraith/regroup/audio"
	"github.com/lixenwraith/regroup/config"
	"github.com/lixenwraith/regroup/constant"
	"github.com/lixenwraith/regroup/engine"
	"github.com/lixenwraith/regroup/event"
	"github.com/lixenwraith/regroup/input"
	"github.com/lixenwraith/regroup/level"
	"github.com/lixenwraith/regroup/render"
	"github.com/lixenwraith/regroup/render/renderers"
	"github.com/lixenwraith/regroup/service"
	"github.com/lixenwraith/regroup/status"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML or YAML config file, reloaded on change")
	levelFlag    = flag.Int("level", 0, "Start level 1-5, overrides config")
	showWorkFlag = flag.Bool("show-work", false, "Start with the math expression shown")
	themeFlag    = flag.String("theme", "", "Color theme: default, mono")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/regroup.log")
	schemaFlag   = flag.Bool("schema", false, "Print the config JSON schema and exit")
)

// screen is kept at package level so crash handlers can restore the terminal
var screen tcell.Screen

func crash(what string, r any) {
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the app crashes
	defer func() {
		if r := recover(); r != nil {
			crash("REGROUP", r)
		}
	}()

	flag.Parse()

	if *schemaFlag {
		data, err := config.Schema()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build schema: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	flags := visitedFlags()
	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// overrides holds the names of flags given on the command line
type overrides map[string]bool

func visitedFlags() overrides {
	o := overrides{}
	flag.Visit(func(f *flag.Flag) { o[f.Name] = true })
	return o
}

// apply layers the given flags over file and environment settings
func (o overrides) apply(cfg *config.Config) {
	if o["level"] {
		cfg.StartLevel = *levelFlag
	}
	if o["show-work"] {
		cfg.ShowWork = *showWorkFlag
	}
	if o["theme"] {
		cfg.Theme = *themeFlag
	}
	if o["debug"] {
		cfg.Debug = *debugFlag
	}
}

// loadConfig layers flags over file and environment settings
func loadConfig(flags overrides) (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, flags overrides) error {
	hub := service.NewHub()
	sound := service.NewAudio(*muteFlag)
	watcher := service.NewWatcher(*configFlag)
	for _, svc := range []service.Service{sound, watcher} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.InitAll(cfg); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	log.Printf("services: %v", hub.Names())

	// Audio is optional: the app runs silently when the speaker is unavailable
	var muter input.Muter
	if sm := sound.Manager(); sm != nil {
		muter = sm
	}

	var err error
	screen, err = tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	queue := event.NewQueue()
	clock := engine.NewSystemTimeProvider()
	a := app.New(queue, clock, app.Options{
		StartLevel: level.ID(cfg.StartLevel),
		ShowWork:   cfg.ShowWork,
		BreakDelay: cfg.BreakDelay,
		Locale:     cfg.Locale,
	})

	registry := status.NewRegistry()
	dirty := render.NewDirtyTracker()
	events := event.NewRouter(queue)
	events.Register(status.NewTracker(registry))
	events.Register(dirty)
	events.Register(debugLogger())
	if sm := sound.Manager(); sm != nil {
		events.Register(audio.NewHandler(sm))
	}

	orchestrator := render.NewOrchestrator(screen, render.ThemeFor(cfg.Theme))
	renderers.RegisterAll(orchestrator)

	machine := input.NewMachine()
	router := input.NewRouter(a, muter)

	eventChan := make(chan tcell.Event, constant.InputEventBuffer)
	// Input polling uses raw goroutine as it interacts directly with the screen
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constant.FrameUpdateInterval)
	defer frameTicker.Stop()

	// One extra frame after an animation ends clears its last highlight
	var wasAnimating bool
	var frame int64

	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(ev, a.LevelID(), orchestrator.Layout())
			if intent == nil {
				continue
			}
			if intent.Type == input.IntentResize {
				orchestrator.Resize(screen.Size())
			}
			if router.Handle(intent) {
				return nil
			}
			events.DispatchAll()
			// Selection and mute changes emit no events
			dirty.Mark()

		case <-frameTicker.C:
			frame++
			queue.SetFrame(frame)
			a.Update()
			events.DispatchAll()
			anim := animating(a, clock.Now())
			if dirty.Take() || anim || wasAnimating {
				orchestrator.RenderFrame(render.Context{
					Now:    clock.Now(),
					App:    a,
					Status: registry,
					Cursor: router.Cursor(),
					Muted:  router.Muted(),
				})
			}
			wasAnimating = anim

		case c := <-watcher.Reloads():
			// Command line flags keep precedence over the edited file
			flags.apply(c)
			orchestrator.SetTheme(render.ThemeFor(c.Theme))
			a.SetLocale(c.Locale)
			a.SetBreakDelay(c.BreakDelay)
			sound.Apply(c)
			queue.Emit(event.EventConfigReloaded, nil)
			log.Printf("config: reloaded theme=%s locale=%s break_delay=%v", c.Theme, c.Locale, c.BreakDelay)
		}
	}
}

// animating reports whether the active level has a running break or a
// fading afterglow, both of which need redraws without new events
func animating(a *app.App, now time.Time) bool {
	b := a.Level().Breaker()
	if b == nil {
		return false
	}
	if b.Busy() {
		return true
	}
	_, glowing := b.Afterglow(now)
	return glowing
}

// debugLogger writes break transitions and guarded no-ops to the debug log.
// Guarded no-ops are never shown to the user
func debugLogger() event.HandlerFunc {
	return event.HandlerFunc{
		Types: []event.EventType{
			event.EventBreakStarted, event.EventBreakFinished, event.EventBreakCancelled,
			event.EventActionBlocked,
		},
		Fn: func(ev event.Event) {
			switch p := ev.Payload.(type) {
			case *event.BreakPayload:
				log.Printf("break: frame %d %s level %d %s -> %s", ev.Frame, ev.Type, p.Level, p.Source, p.Dest)
			case *event.BlockedPayload:
				log.Printf("ignored: frame %d level %d %s (%s)", ev.Frame, p.Level, p.Action, p.Reason)
			}
		},
	}
}

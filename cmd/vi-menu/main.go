// Command vi-menu runs the nested list demo in the terminal or a window
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/audio"
	"github.com/lixenwraith/vi-menu/component"
	"github.com/lixenwraith/vi-menu/config"
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/engine"
	"github.com/lixenwraith/vi-menu/input"
	"github.com/lixenwraith/vi-menu/parameter"
	"github.com/lixenwraith/vi-menu/render"
	"github.com/lixenwraith/vi-menu/render/cell"
	"github.com/lixenwraith/vi-menu/render/gfx"
	"github.com/lixenwraith/vi-menu/screen"
)

var (
	configPath = flag.String("config", "", "TOML file layered over the built-in config, reloaded on change")
	debugFlag  = flag.Bool("debug", false, "write logs to "+parameter.LogDir)
	gfxFlag    = flag.Bool("gfx", false, "open a window instead of drawing in the terminal")
	dumpConfig = flag.Bool("dump-config", false, "print the effective config and exit")
	contentDir = flag.String("content", "content", "directory images and fonts load from")
)

// Thumbnails are 16px sprites: 64px in a window, 4 cells in a terminal
const (
	gfxThumbScale  = 4
	cellThumbScale = 0.25
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-menu: %v\n", err)
		os.Exit(1)
	}

	if *dumpConfig {
		data, err := cfg.Encode()
		if err != nil {
			fmt.Fprintf(os.Stderr, "vi-menu: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	logFile := setupLogging(*debugFlag || cfg.Log.Debug)
	err = run(cfg)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-menu: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		cfg.ApplyEnv()
		return cfg, nil
	}
	return config.Load(path)
}

// app is the state shared by both backends
type app struct {
	cfg     *config.Config
	cues    *audio.Cues
	tree    *component.Tree
	manager *screen.Manager

	// onReload applies backend specific settings after a config reload
	onReload func(*config.Config)
}

func run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cues := audio.NewCues(cfg.Audio.Enabled, cfg.Audio.Volume)
	if err := cues.Initialize(); err != nil {
		log.Printf("[audio] %v, continuing without audio", err)
	}
	defer cues.Cleanup()

	a := &app{cfg: cfg, cues: cues}
	if *gfxFlag {
		return a.runWindow(ctx)
	}
	return a.runTerminal(ctx, cancel)
}

// build creates the background and menu screens on backend
func (a *app) build(backend render.Backend, loader asset.Loader, thumbScale float64) error {
	a.manager = screen.NewManager(backend, asset.NewCache(loader))

	bgTree := component.NewTree(a.cfg.ComponentDefaults())
	bgRoot := bgTree.NewContainer()
	bgTree.Node(bgRoot).Color = core.RGBA{R: 16, G: 24, B: 48, A: 255}
	bg := screen.New(bgTree, bgRoot)
	bg.Name = "background"
	bg.Backdrop = true

	a.tree = component.NewTree(a.cfg.ComponentDefaults())
	d := buildDemo(a.tree, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), thumbScale)
	for _, h := range append([]component.Handle{d.vList, d.vList2}, d.hLists...) {
		a.cues.Bind(a.tree, h)
	}
	menu := screen.New(a.tree, d.root)
	menu.Name = "menu"

	if err := a.manager.Add(bg); err != nil {
		return err
	}
	return a.manager.Add(menu)
}

// watch applies config reloads on the loop goroutine until ctx ends
func (a *app) watch(ctx context.Context, loop *engine.Loop) {
	if *configPath == "" {
		return
	}
	reloads, err := config.Watch(ctx, *configPath)
	if err != nil {
		log.Printf("[config] %v, live reload disabled", err)
		return
	}
	core.Go(func() {
		for r := range reloads {
			if r.Err != nil {
				log.Printf("[config] reload rejected: %v", r.Err)
				continue
			}
			cfg := r.Config
			if err := loop.Post(func() { a.apply(cfg) }); err != nil {
				log.Printf("[config] reload dropped: %v", err)
			}
		}
	})
}

// apply seeds nodes created from now on, existing nodes keep their values
func (a *app) apply(cfg *config.Config) {
	a.cfg = cfg
	a.tree.SetDefaults(cfg.ComponentDefaults())
	a.cues.SetEnabled(cfg.Audio.Enabled)
	a.cues.SetVolume(cfg.Audio.Volume)
	if a.onReload != nil {
		a.onReload(cfg)
	}
	log.Printf("[config] reloaded %s", *configPath)
}

func (a *app) runTerminal(ctx context.Context, cancel context.CancelFunc) error {
	backend, err := cell.New()
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return err
	}
	core.SetCrashCleanup(backend.Fini)
	defer backend.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	loader := sheetLoader{
		Loader: cell.NewLoader(*contentDir),
		wrap:   func(img image.Image) asset.Image { return cell.NewPicture(img) },
	}
	if err := a.build(backend, loader, cellThumbScale); err != nil {
		return err
	}

	kb := cell.NewKeyboard(a.cfg.HoldWindow())
	a.onReload = func(cfg *config.Config) { kb.SetWindow(cfg.HoldWindow()) }

	h := &host{
		manager: a.manager,
		sample:  func() input.Snapshot { return kb.Snapshot(time.Now()) },
		quit:    cancel,
	}
	loop := engine.NewLoop(h, engine.NewPausableClock(nil))

	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := backend.Screen().PollEvent()
			if ev == nil {
				return
			}
			now := time.Now()
			postEvent(loop, ev, func() { a.handleEvent(backend, kb, ev, now, cancel) })
		}
	})

	a.watch(ctx, loop)
	cols, rows := backend.Size()
	log.Printf("[main] terminal %dx%d", cols, rows)
	return loop.Run(ctx)
}

// postEvent queues a terminal event for the loop, a full queue drops it
func postEvent(loop *engine.Loop, ev tcell.Event, fn func()) {
	if err := loop.Post(fn); err != nil {
		log.Printf("[main] event %T dropped: %v", ev, err)
	}
}

func (a *app) handleEvent(backend *cell.Backend, kb *cell.Keyboard, ev tcell.Event, now time.Time, cancel context.CancelFunc) {
	if fe, ok := ev.(*tcell.EventFocus); ok {
		a.manager.SetActive(fe.Focused)
	}
	switch kb.Handle(ev, now) {
	case cell.SignalQuit:
		cancel()
	case cell.SignalResize:
		backend.Sync()
		backend.Screen().Sync()
	}
}

func (a *app) runWindow(ctx context.Context) error {
	backend := gfx.New(parameter.GfxWindowWidth, parameter.GfxWindowHeight)
	loader := sheetLoader{
		Loader: gfx.NewLoader(*contentDir),
		wrap:   func(img image.Image) asset.Image { return gfx.NewTexture(ebiten.NewImageFromImage(img)) },
	}
	if err := a.build(backend, loader, gfxThumbScale); err != nil {
		return err
	}

	sampler := gfx.NewSampler()
	h := &host{manager: a.manager, sample: sampler.Sample}
	loop := engine.NewLoop(h, engine.NewPausableClock(nil))
	game := gfx.NewGame(backend, loop, h)
	h.quit = game.Quit

	core.Go(func() {
		<-ctx.Done()
		game.Quit()
	})
	a.watch(ctx, loop)
	return game.Run()
}

// Command portalterm renders a portal map in the terminal, two pixel rows per
// character cell.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"portalview/internal/geom"
	"portalview/internal/level"
	"portalview/internal/palette"
	"portalview/internal/player"
	"portalview/internal/render"
	"portalview/internal/scene"
)

const (
	frameInterval   = 33 * time.Millisecond
	moveSpeed       = 20
	lookSpeed       = 5
	collisionRadius = 100
	stepsPerClick   = 3
	clickFrequency  = 220
	clickDuration   = 40 * time.Millisecond
	sampleRate      = beep.SampleRate(44100)
)

var (
	mapFlag         = flag.String("map", "", "JSON map file to load (default: built-in demo map)")
	builtinFlag     = flag.String("builtin", "demo", "built-in map to use without -map: default or demo")
	minimapFlag     = flag.Bool("minimap", false, "show the top-down minimap")
	showCornersFlag = flag.Bool("show-corners", false, "mark projected wall corners")
	maxDepthFlag    = flag.Int("max-depth", 32, "maximum portal recursion depth")
	soundFlag       = flag.Bool("sound", false, "click on footsteps")
)

type app struct {
	screen tcell.Screen
	world  *level.Map
	player *player.Player
	scene  *scene.Scene
	opts   scene.Options
	stats  render.Stats

	colors [256]tcell.Color
	steps  int
	sound  bool
}

func newApp(world *level.Map) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cfg := render.DefaultConfig()
	cfg.MaxDepth = *maxDepthFlag
	a := &app{
		screen: screen,
		world:  world,
		player: player.New(geom.NewTrig(), world, moveSpeed, lookSpeed, collisionRadius),
		scene:  scene.New(cfg),
		opts:   scene.Options{Corners: *showCornersFlag, Minimap: *minimapFlag},
	}
	for i, c := range palette.RGBA {
		a.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}

	if *soundFlag {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			// Non-fatal, the viewer runs without sound.
			log.Printf("Audio initialization failed: %v", err)
		} else {
			a.sound = true
		}
	}
	return a, nil
}

func (a *app) click() {
	if !a.sound {
		return
	}
	sine, err := generators.SineTone(sampleRate, clickFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickDuration), sine))
}

// handleInput applies one key event and reports whether to keep running.
func (a *app) handleInput(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, resized := ev.(*tcell.EventResize); resized {
			a.screen.Sync()
		}
		return true
	}

	var in player.Input
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		in.Forward = true
	case tcell.KeyDown:
		in.Back = true
	case tcell.KeyLeft:
		in.TurnLeft = true
	case tcell.KeyRight:
		in.TurnRight = true
	case tcell.KeyTab:
		a.opts.Minimap = !a.opts.Minimap
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w':
			in.Forward = true
		case 's':
			in.Back = true
		case 'a':
			in.StrafeLeft = true
		case 'd':
			in.StrafeRight = true
		case 'q':
			in.TurnLeft = true
		case 'e':
			in.TurnRight = true
		case 'c':
			a.opts.Corners = !a.opts.Corners
		case '+', '=':
			r := a.scene.Renderer()
			r.SetMaxDepth(r.Config().MaxDepth + 1)
		case '-':
			r := a.scene.Renderer()
			r.SetMaxDepth(max(0, r.Config().MaxDepth-1))
		}
	}

	if !in.Idle() && a.player.Step(in) {
		a.steps++
		if a.steps%stepsPerClick == 0 {
			a.click()
		}
	}
	return true
}

// draw scales the frame onto the terminal. Each cell shows two stacked
// pixels with the upper-half block.
func (a *app) draw() {
	a.stats = a.scene.Draw(a.world, a.player.Camera, a.opts)
	frame := a.scene.Frame

	cols, rows := a.screen.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	// The last row holds the status line.
	pixRows := 2 * (rows - 1)
	for cy := 0; cy < rows-1; cy++ {
		top := (2 * cy) * frame.Height / pixRows
		bottom := (2*cy + 1) * frame.Height / pixRows
		for cx := 0; cx < cols; cx++ {
			x := cx * frame.Width / cols
			style := tcell.StyleDefault.
				Foreground(a.colors[frame.At(x, top)]).
				Background(a.colors[frame.At(x, bottom)])
			a.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}

	cam := a.player.Camera
	status := fmt.Sprintf(" %s  sector %d  walls %d  portals %d  depth %d  [wasd/arrows move, tab map, c corners, esc quit]",
		a.world.Name, cam.Sector, a.stats.Walls, a.stats.Portals, a.stats.MaxDepth)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for cx := 0; cx < cols; cx++ {
		r := ' '
		if cx < len(status) {
			r = rune(status[cx])
		}
		a.screen.SetContent(cx, rows-1, r, nil, style)
	}
	a.screen.Show()
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.draw()
		}
	}
}

func (a *app) cleanup() {
	if a.sound {
		speaker.Close()
	}
	a.screen.Fini()
}

func loadWorld() (*level.Map, error) {
	var (
		m   *level.Map
		err error
	)
	if *mapFlag != "" {
		m, err = level.LoadFile(*mapFlag)
	} else {
		m, err = level.Builtin(*builtinFlag)
	}
	if err != nil {
		return nil, err
	}
	return m, level.Validate(m)
}

func main() {
	flag.Parse()

	world, err := loadWorld()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load map: %v\n", err)
		os.Exit(1)
	}

	a, err := newApp(world)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}

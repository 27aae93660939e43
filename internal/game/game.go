// Package game runs the demo: a raylib window with the command ring
// anchored in front of a fixed camera. Holding the right mouse button
// stands in for a detected hand, horizontal drag rotates the ring, and
// a left click fires the selected command. A websocket tracker feed
// can drive the same controller remotely.
package game

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/arcsin16/HoloRingCommand/internal/assets"
	"github.com/arcsin16/HoloRingCommand/internal/audio"
	"github.com/arcsin16/HoloRingCommand/internal/engine"
	"github.com/arcsin16/HoloRingCommand/internal/hand"
	"github.com/arcsin16/HoloRingCommand/internal/ring"
)

// Horizontal mouse movement in pixels maps to hand movement in meters.
const mouseSensitivity = 0.0012

// Options configures the demo.
type Options struct {
	Config      ring.Config
	Icons       *assets.IconSet
	Sounds      map[ring.SoundKind]string // kind -> clip path; missing kinds stay silent
	TrackerAddr string                    // websocket tracker listen address; empty disables
}

type spawnedItem struct {
	obj   *engine.GameObject
	color rl.Color
}

type Game struct {
	opts   Options
	scene  *engine.Scene
	camera rl.Camera3D

	controller *ring.Controller
	view       *ringView
	bank       *audio.Bank
	tracker    *hand.Tracker
	panel      *tuningPanel

	// trackerEvents carries hand-feed events from tracker goroutines to
	// the main loop; the controller is only ever called from there.
	trackerEvents chan func(*ring.Controller)

	spawned []spawnedItem
}

// New validates the options and builds the game. The window and audio
// device are created in Run.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Icons == nil {
		opts.Icons = assets.DefaultIconSet(opts.Config.Count)
	}
	if len(opts.Icons.Icons) != opts.Config.Count {
		return nil, fmt.Errorf("game: %d icons for a %d-slot ring", len(opts.Icons.Icons), opts.Config.Count)
	}
	return &Game{
		opts:          opts,
		panel:         newTuningPanel(opts.Config),
		trackerEvents: make(chan func(*ring.Controller), 256),
	}, nil
}

// Run opens the window and blocks until it closes.
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "HoloRing Command")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)

	g.bank = audio.NewBank()
	defer g.bank.Close()
	for kind, path := range g.opts.Sounds {
		g.bank.Load(kind, path)
	}

	g.camera = rl.Camera3D{
		Position:   rl.Vector3{Z: 1.2},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	if err := g.rebuild(g.opts.Config, g.opts.Icons); err != nil {
		return err
	}

	if g.opts.TrackerAddr != "" {
		g.tracker = hand.NewTracker(g)
		defer g.tracker.Close()
		go func() {
			if err := g.tracker.ListenAndServe(g.opts.TrackerAddr); err != nil {
				log.Printf("game: tracker server stopped: %v", err)
			}
		}()
	}

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		g.handleInput()
		g.scene.Update(dt)
		g.sweepSpawned()
		g.draw()
	}
	return nil
}

// rebuild recreates the scene, view and controller for cfg. Called at
// startup and whenever the tuning panel applies new parameters.
func (g *Game) rebuild(cfg ring.Config, icons *assets.IconSet) error {
	if len(icons.Icons) != cfg.Count {
		icons = assets.DefaultIconSet(cfg.Count)
	}

	scene := engine.NewScene("HoloRing")
	root := engine.NewGameObject("Ring")
	scene.AddGameObject(root)

	view := newRingView(root, icons, g.bank)
	controller, err := ring.NewController(cfg, view)
	if err != nil {
		return err
	}
	view.OnSpawn.AddListener(g.spawnCommand)
	root.AddComponent(&ringBehavior{game: g})

	scene.Start()

	g.opts.Config = cfg
	g.scene = scene
	g.view = view
	g.controller = controller
	g.spawned = nil
	return nil
}

// ringBehavior mounts the controller in the scene: the ring root's
// Update drives the controller's tick.
type ringBehavior struct {
	engine.BaseComponent
	game *Game
}

func (b *ringBehavior) Update(deltaTime float32) {
	b.game.controller.Tick(deltaTime)
}

// hand.Sink implementation. Tracker read loops run on their own
// goroutines, so they only queue events here; handleInput applies them
// on the main loop, which also keeps the feed pointed at the current
// controller across panel-driven rebuilds.

func (g *Game) Activate(frame ring.Frame) { g.post(func(c *ring.Controller) { c.Activate(frame) }) }

func (g *Game) Deactivate() { g.post(func(c *ring.Controller) { c.Deactivate() }) }

func (g *Game) HandSample(p rl.Vector3) { g.post(func(c *ring.Controller) { c.HandSample(p) }) }

func (g *Game) Pressed() { g.post(func(c *ring.Controller) { c.Pressed() }) }

func (g *Game) Released() { g.post(func(c *ring.Controller) { c.Released() }) }

// post queues a tracker event without blocking the read loop. If the
// main loop has stalled the event is dropped; a tracker that cares
// resends its pose on the next sample.
func (g *Game) post(event func(*ring.Controller)) {
	select {
	case g.trackerEvents <- event:
	default:
	}
}

// drainTrackerEvents applies queued tracker events to the controller.
func (g *Game) drainTrackerEvents() {
	for {
		select {
		case event := <-g.trackerEvents:
			event(g.controller)
		default:
			return
		}
	}
}

func (g *Game) handleInput() {
	g.drainTrackerEvents()

	// Right mouse button is the stand-in hand-tracking source.
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.controller.Activate(ring.Frame{Origin: g.camera.Position, Right: rl.Vector3{X: 1}})
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonRight) {
		g.controller.Deactivate()
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		if dx := rl.GetMouseDelta().X; dx != 0 {
			g.controller.HandMoved(dx * mouseSensitivity)
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.controller.Pressed()
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		g.controller.Released()
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.visible = !g.panel.visible
	}
}

// spawnCommand materializes the fired command as a spinning cube that
// falls away from the ring and expires.
func (g *Game) spawnCommand(index int) {
	def := g.view.defs[index]
	log.Printf("game: spawn %q", def.Name)

	root := g.scene.FindByName("Ring")
	if root == nil {
		return
	}

	// Spawn under the ring root so the cube inherits the ring's pose,
	// then detach so it falls in world space.
	obj := engine.NewGameObject(def.Name)
	obj.Transform.Position = rl.Vector3{Z: -0.3}
	root.AddChild(obj)
	obj.Transform.Position = obj.WorldPosition()
	root.RemoveChild(obj)

	obj.AddComponent(&Spinner{Speed: 180, Drop: 0.15})
	obj.AddComponent(&Lifetime{Remaining: 3})
	g.scene.AddGameObject(obj)
	obj.Start()

	g.spawned = append(g.spawned, spawnedItem{obj: obj, color: def.DisplayColor()})
}

// sweepSpawned drops expired command objects from the scene.
func (g *Game) sweepSpawned() {
	kept := g.spawned[:0]
	for _, item := range g.spawned {
		if item.obj.Active {
			kept = append(kept, item)
			continue
		}
		g.scene.RemoveGameObject(item.obj)
	}
	g.spawned = kept
}

func (g *Game) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(g.camera)
	g.view.draw()
	for _, item := range g.spawned {
		pos := item.obj.WorldPosition()
		color := item.color
		wire := rl.White
		// Fade the cube out over its final second.
		if lt := engine.GetComponent[*Lifetime](item.obj); lt != nil && lt.Remaining < 1 {
			alpha := lt.Remaining
			if alpha < 0 {
				alpha = 0
			}
			color = rl.Fade(color, alpha)
			wire = rl.Fade(wire, alpha)
		}
		rl.DrawCube(pos, 0.08, 0.08, 0.08, color)
		rl.DrawCubeWires(pos, 0.08, 0.08, 0.08, wire)
	}
	rl.EndMode3D()

	g.drawUI()
	rl.EndDrawing()
}

func (g *Game) drawUI() {
	rl.DrawText("Hold RMB: show ring   Drag: rotate   LMB: fire command   Tab: tuning", 10, 10, 20, rl.DarkGray)
	rl.DrawFPS(10, 35)

	state := g.controller.State()
	rl.DrawText(fmt.Sprintf("State: %s", state), 10, 60, 16, rl.Gray)
	if state != ring.StateInactive {
		if name := g.view.selectedName(); name != "" {
			rl.DrawText(fmt.Sprintf("Selected: %s", name), 10, 80, 16, rl.Gray)
		}
	}
	if g.tracker != nil {
		rl.DrawText(fmt.Sprintf("Trackers: %d", g.tracker.ClientCount()), 10, 100, 16, rl.Gray)
	}

	prevVolume := g.panel.volume
	if cfg, apply := g.panel.draw(); apply {
		if err := g.rebuild(cfg, g.opts.Icons); err != nil {
			log.Printf("game: rebuild failed: %v", err)
		}
	}
	if g.panel.volume != prevVolume {
		g.bank.SetVolume(g.panel.volume)
	}
}

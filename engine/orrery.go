package engine

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/control"
	"github.com/lixenwraith/orrery/observability"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/sim"
	"github.com/lixenwraith/orrery/terminal"
)

// overrunLogEvery bounds frame overrun log lines
const overrunLogEvery = 5 * time.Second

// Orrery owns every piece of per-frame state and runs the frame pipeline
type Orrery struct {
	Params   sim.Params
	System   *sim.System
	Scene    *scene.Scene
	Camera   *camera.Camera
	Controls *camera.OrbitControls
	Focus    *camera.Focus
	Surface  *control.Surface
	Renderer *render.Renderer

	term     terminal.Terminal
	clock    Clock
	metrics  *observability.Collector
	budget   time.Duration
	overruns *rate.Limiter
}

// Deps are the optional collaborators of an Orrery
type Deps struct {
	Terminal terminal.Terminal // nil renders into the buffer only
	Clock    Clock
	Sound    control.Sounder
	Metrics  *observability.Collector
}

// New builds the system, scene, camera and control surface from cfg
func New(cfg config.Config, d Deps) *Orrery {
	if d.Clock == nil {
		d.Clock = WallClock{}
	}

	simOpts := sim.DefaultOptions()
	simOpts.Seed = cfg.Seed
	simOpts.RandomPhase = cfg.RandomPhase
	simOpts.TrailCapacity = cfg.TrailCapacity
	simOpts.Belt = body.Belt
	simOpts.Belt.Count = cfg.AsteroidCount
	sys := sim.NewSystem(simOpts)

	sceneOpts := scene.DefaultOptions()
	sceneOpts.Seed = cfg.Seed
	sceneOpts.StarCount = cfg.StarCount
	sc := scene.Build(sys, sceneOpts)

	home := cfg.StartPosition()
	cam := camera.New(home, camera.DefaultTarget)
	if cfg.Camera.FOVDeg > 0 {
		cam.FOV = cfg.Camera.FOVDeg
	}

	controls := camera.NewOrbitControls()
	if cfg.Camera.MinDistance > 0 {
		controls.MinDistance = cfg.Camera.MinDistance
	}
	if cfg.Camera.MaxDistance > 0 {
		controls.MaxDistance = cfg.Camera.MaxDistance
	}
	if cfg.Camera.Damping > 0 {
		controls.Damping = cfg.Camera.Damping
	}

	focus := camera.NewFocus(d.Clock, cfg.Focus.Duration)

	keymap := control.DefaultKeymap()
	keymap.Apply(cfg.Keys)

	o := &Orrery{
		Params:   sim.DefaultParams(),
		System:   sys,
		Scene:    sc,
		Camera:   cam,
		Controls: controls,
		Focus:    focus,
		term:     d.Terminal,
		clock:    d.Clock,
		metrics:  d.Metrics,
		budget:   cfg.FrameInterval(),
		overruns: rate.NewLimiter(rate.Every(overrunLogEvery), 1),
	}

	o.Surface = control.NewSurface(control.Deps{
		Params:       &o.Params,
		System:       sys,
		Scene:        sc,
		Camera:       cam,
		Controls:     controls,
		Focus:        focus,
		Keymap:       keymap,
		Sound:        d.Sound,
		Metrics:      d.Metrics,
		HomePosition: home,
		HomeTarget:   camera.DefaultTarget,
		SunDistance:  cfg.Focus.SunDistance,
		BodyDistance: cfg.Focus.BodyDistance,
	})

	w, h := 80, 24
	if d.Terminal != nil {
		w, h = d.Terminal.Size()
	}
	o.Renderer = render.NewRenderer(w, h)
	o.Surface.Resize(w, h)

	d.Metrics.SetBodies(sys.Len())
	log.Printf("orrery: %d bodies, %d stars, %dx%d", sys.Len(), sceneOpts.StarCount, w, h)
	return o
}

// Frame runs one frame: motion, trails, camera transition, orbit controls, render
// now is the loop's reading of the Orrery clock, transitions read the same clock
func (o *Orrery) Frame(now time.Time) {
	start := time.Now()

	o.System.Advance(o.Params)
	o.System.RecordTrails(o.Params)
	o.Focus.Step(o.Camera)
	o.Controls.Update(o.Camera)

	o.Renderer.Render(o.Camera, o.Scene, o.System, o.Overlay())
	if o.term != nil {
		o.Renderer.Flush(o.term)
	}

	elapsed := time.Since(start)
	o.metrics.ObserveFrame(elapsed)
	if elapsed > o.budget && o.overruns.Allow() {
		log.Printf("orrery: frame %d at %s took %v, budget %v", o.System.Frames(), now.Format("15:04:05.000"), elapsed, o.budget)
	}
}

// HandleEvent forwards terminal input to the control surface, false once quit was requested
func (o *Orrery) HandleEvent(ev tcell.Event) bool {
	if rs, ok := ev.(*tcell.EventResize); ok {
		w, h := rs.Size()
		o.Renderer.Resize(w, h)
	}
	return o.Surface.HandleEvent(ev)
}

// Overlay snapshots the control surface for the HUD
func (o *Orrery) Overlay() render.Overlay {
	selected := o.Surface.Selected()
	name := selected
	if d, ok := body.Lookup(selected); ok {
		name = d.Name
	}
	return render.Overlay{
		RunningLabel:  o.Surface.RunningLabel(),
		Running:       o.Params.Running,
		TimeScale:     o.Params.TimeScale,
		Selected:      name,
		SelectedSpeed: o.Surface.SpeedMultiplier(selected),
		Focus:         o.Surface.FocusName(),
		Visibility:    o.Params.Visibility,
		Tooltip:       o.Surface.Tooltip(),
		Help:          render.DefaultHelp,
	}
}

// NewLoop binds the frame pipeline and event handling to a Loop
// Frames are stamped by the same clock that times camera transitions
func (o *Orrery) NewLoop(interval time.Duration, events <-chan tcell.Event) *Loop[tcell.Event] {
	return NewLoop(interval, o.clock, events, o.Frame, o.HandleEvent)
}

// flatview - terminal preview for flatshade
// Runs the flat-shading pipeline and shows the result in the terminal with
// half-block pixels. Faces are revealed in draw order, eased by a spring, so
// the painter's-algorithm overdraw is visible as it happens.
//
// Controls:
//
//	R    - Restart the reveal
//	X    - Toggle wireframe
//	Esc  - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/flatshade/pkg/models"
	"github.com/taigrr/flatshade/pkg/render"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	bgColor   = flag.String("bg", "0,0,0", "Background color (R,G,B)")
	size      = flag.Int("size", 600, "Internal render resolution (square)")
	wireframe = flag.Bool("wireframe", false, "Start in wireframe mode")
	workers   = flag.Int("workers", runtime.NumCPU(), "Fill goroutines")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "flatview - terminal preview for flatshade\n\n")
		fmt.Fprintf(os.Stderr, "Usage: flatview [options] <model.obj|model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  R    - Restart the reveal\n")
		fmt.Fprintf(os.Stderr, "  X    - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  Esc  - Quit\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Reveal eases the number of painted faces from 0 toward the face count
// with a critically damped spring.
type Reveal struct {
	Position float64
	velocity float64
	total    int
	drawn    int
	spring   harmonica.Spring
}

// NewReveal creates a reveal over total faces. fps below 1 is treated as 1.
func NewReveal(fps, total int) *Reveal {
	return &Reveal{
		total: total,
		// Low frequency so large meshes take a couple of seconds.
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 1.5, 1.0),
	}
}

// frameInterval returns the frame budget for fps, at least one frame a second.
func frameInterval(fps int) time.Duration {
	return time.Second / time.Duration(max(fps, 1))
}

// Update advances the spring one frame and returns the face range that
// became visible since the previous call.
func (r *Reveal) Update() (from, to int) {
	r.Position, r.velocity = r.spring.Update(r.Position, r.velocity, float64(r.total))

	to = int(math.Round(r.Position))
	if float64(r.total)-r.Position < 0.5 {
		to = r.total
	}
	to = min(max(to, r.drawn), r.total)

	from = r.drawn
	r.drawn = to
	return from, to
}

// Done reports whether every face has been revealed.
func (r *Reveal) Done() bool {
	return r.drawn >= r.total
}

// Reset starts the reveal over.
func (r *Reveal) Reset() {
	r.Position, r.velocity, r.drawn = 0, 0, 0
}

type actionKind int

const (
	actionQuit actionKind = iota
	actionRestart
	actionToggleWireframe
	actionResize
)

// action is sent from the event goroutine to the render loop.
type action struct {
	kind          actionKind
	width, height int
}

func run(modelPath string) error {
	var bgR, bgG, bgB uint8
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)
	bg := render.RGB(bgR, bgG, bgB)

	mesh, err := models.Load(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	fmt.Printf("Loaded: %s (%d vertices, %d triangles)\n", filepath.Base(modelPath), mesh.VertexCount(), mesh.TriangleCount())

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	renderer := render.NewRenderer(render.NewFramebuffer(*size, *size), render.WithWorkers(*workers))
	fb := renderer.Framebuffer()
	view := render.NewFramebuffer(width, height*2)
	reveal := NewReveal(*targetFPS, mesh.TriangleCount())
	wire := *wireframe

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	actions := make(chan action, 16)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				actions <- action{kind: actionResize, width: ev.Width, height: ev.Height}
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c", "q"):
					actions <- action{kind: actionQuit}
					return
				case ev.MatchString("r"):
					actions <- action{kind: actionRestart}
				case ev.MatchString("x"):
					actions <- action{kind: actionToggleWireframe}
				}
			}
		}
	}()

	var total render.Stats
	restart := func() {
		fb.Clear(render.ColorBlack)
		reveal.Reset()
		total = render.Stats{}
		if wire {
			if _, err := renderer.RenderWireframe(mesh, render.RGB(0, 255, 128)); err != nil {
				render.Logger().Warn("wireframe", "err", err)
			}
		}
	}
	restart()

	targetDuration := frameInterval(*targetFPS)
	dirty := true

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		case a := <-actions:
			switch a.kind {
			case actionQuit:
				cleanup()
				return nil
			case actionRestart:
				restart()
			case actionToggleWireframe:
				wire = !wire
				restart()
			case actionResize:
				width, height = a.width, a.height
				term.Erase()
				term.Resize(width, height)
				view = render.NewFramebuffer(width, height*2)
			}
			dirty = true
		default:
		}

		now := time.Now()

		if !wire && !reveal.Done() {
			from, to := reveal.Update()
			if to > from {
				stats, err := renderer.RenderFaces(mesh, from, to)
				if err != nil {
					cleanup()
					return fmt.Errorf("render: %w", err)
				}
				total.Add(stats)
				if reveal.Done() {
					render.Logger().Info("reveal done",
						"faces", total.Faces, "drawn", total.Drawn, "culled", total.Culled,
						"skipped", total.Skipped, "pixels", total.Pixels)
				}
				dirty = true
			}
		}

		if dirty {
			// The framebuffer is stored bottom-up until finalized.
			flipped := fb.Clone()
			flipped.FlipVertical()

			view.Clear(bg)
			render.ScaleInto(view, render.FitSquare(view.Bounds()), flipped)
			view.Draw(term, term.Bounds())
			if err := term.Display(); err != nil {
				cleanup()
				return fmt.Errorf("display: %w", err)
			}
			dirty = false
		}

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

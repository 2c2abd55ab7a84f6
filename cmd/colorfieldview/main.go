// colorfieldview is a minimal demo binary: it wires orchestrator and
// sdlcanvas together to display one RenderRequest, built from flags,
// rotating it slowly in volume mode. It exists to exercise the core
// pipeline end to end, not as the host UI (out of scope per the core's
// own boundary).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/flga/colorfield/orchestrator"
	"github.com/flga/colorfield/palette"
	"github.com/flga/colorfield/render"
	"github.com/flga/colorfield/sdlcanvas"
	"github.com/flga/colorfield/space"
)

func init() {
	runtime.LockOSThread()
}

func buildRequest(spaceID string, mode render.Mode, polar bool) (render.RenderRequest, error) {
	cs, ok := space.ByID(spaceID)
	if !ok {
		return render.RenderRequest{}, fmt.Errorf("unknown color space %q", spaceID)
	}
	metric, _ := palette.MetricByID(palette.RgbEuclidean)

	axes := cs.Axes()
	slices := render.AxisSlices{}
	if mode == render.Slice2D {
		d := axes[2]
		slices[d.Key] = [2]int{d.Default, d.Default}
	} else {
		for _, a := range axes {
			slices[a.Key] = [2]int{a.Min, a.Max}
		}
	}

	return render.RenderRequest{
		ColorSpace:            cs,
		AxisSlices:            slices,
		Mode:                  mode,
		Polar:                 polar,
		ShowBoundaries:        true,
		HighlightPaletteIndex: render.NoHighlight,
		Metric:                metric,
		DistanceThreshold:     metric.DefaultThreshold,
		ShowUnmatched:         true,
		RotationMatrix:        mgl32.Ident4(),
	}, nil
}

func run(spaceID string, mode render.Mode, polar bool, width, height int) error {
	quitSDL, err := initSDL()
	if err != nil {
		return err
	}
	defer quitSDL()

	window, err := sdlcanvas.New("colorfieldview", width, height)
	if err != nil {
		return err
	}
	defer window.Destroy()

	orch, err := orchestrator.New(window, orchestrator.Options{})
	if err != nil {
		return fmt.Errorf("unable to create orchestrator: %s", err)
	}

	req, err := buildRequest(spaceID, mode, polar)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt, os.Kill, syscall.SIGTERM)
	go func() {
		<-sigchan
		cancel()
	}()

	go func() {
		for {
			select {
			case err := <-orch.Diagnostics():
				fmt.Fprintln(os.Stderr, "render diagnostic:", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	theta := float32(0)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
			if _, ok := evt.(*sdl.QuitEvent); ok {
				return nil
			}
		}

		if mode == render.Volume3D {
			theta += 0.01
			req.RotationMatrix = mgl32.HomogRotate3DY(theta)
		}

		if err := orch.RenderNow(orchestrator.Request{RenderRequest: req}); err != nil {
			return err
		}

		time.Sleep(time.Second / 60)
	}
}

func initSDL() (func(), error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return func() {}, fmt.Errorf("initSDL: unable to init sdl: %s", err)
	}
	return sdl.Quit, nil
}

func main() {
	spaceID := flag.String("space", "HSV", "color space to display: RGB, HSV or HSL")
	mode3d := flag.Bool("3d", false, "render a volume instead of a 2D slice")
	polar := flag.Bool("polar", false, "use the polar (hue-as-angle) layout where available")
	width := flag.Int("width", 640, "window width")
	height := flag.Int("height", 640, "window height")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")

	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not create CPU profile:", err)
			os.Exit(2)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, "could not start CPU profile:", err)
			os.Exit(2)
		}
		defer pprof.StopCPUProfile()
	}

	mode := render.Slice2D
	if *mode3d {
		mode = render.Volume3D
	}

	if err := run(*spaceID, mode, *polar, *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/projectperil/peril/asset"
	"github.com/projectperil/peril/core"
	"github.com/projectperil/peril/input"
	"github.com/projectperil/peril/renderer"
	"github.com/projectperil/peril/scene"
)

func init() {
	runtime.LockOSThread()
}

// Profiling
var (
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	memProfile   = flag.String("memprof", "", "Profile memory usage into a file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
	configPath   = flag.String("config", "options.json", "Path to the options file")
)

var frameCounter int64

// systemConsumer reacts to the engine-level immediate actions.
type systemConsumer struct {
	cancel   context.CancelFunc
	captured *atomic.Bool
}

func (s *systemConsumer) HandledActions() input.Actions {
	return input.Mask(input.Terminate, input.CursorCaptureToggle)
}

func (s *systemConsumer) Consume(actions input.Actions) {
	if actions.Has(input.Terminate) {
		s.cancel()
	}
	if actions.Has(input.CursorCaptureToggle) {
		captured := !s.captured.Load()
		s.captured.Store(captured)
		sdl.SetRelativeMouseMode(captured)
	}
}

func newWindow(cfg core.Configuration) *sdl.Window {
	title := fmt.Sprintf("%s %s", cfg.App.Name, core.VersionString(cfg.App.Version))
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Renderer.WindowWidth),
		int32(cfg.Renderer.WindowHeight),
		sdl.WINDOW_SHOWN)
	if err != nil {
		panic(err)
	}
	return window
}

func newAssetManager(cfg core.Configuration) *asset.Manager {
	var loaders []asset.Loader
	if dir := cfg.Renderer.AssetDirectory; dir != "" {
		loaders = append(loaders, asset.DirLoader{Root: dir})
	}
	if archive := cfg.Renderer.AssetArchive; archive != "" {
		pakLoader, err := asset.OpenPak(archive)
		if err != nil {
			log.WithError(err).Fatal("could not open asset archive")
		}
		loaders = append(loaders, pakLoader)
	}
	loaders = append(loaders, asset.NewBoxLoader())

	manager := asset.NewManager(loaders...)
	if dir := cfg.Renderer.AssetDirectory; dir != "" {
		if err := manager.Watch(dir); err != nil {
			log.WithError(err).Warn("asset watching disabled")
		}
	}
	return manager
}

// blitToWindow copies the presented frame onto the window surface.
func blitToWindow(window *sdl.Window, pix []byte, width, height, stride int) error {
	src, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&pix[0]),
		int32(width), int32(height), 32, int32(stride),
		uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return err
	}
	defer src.Free()

	dst, err := window.GetSurface()
	if err != nil {
		return err
	}
	if err := src.Blit(nil, dst, nil); err != nil {
		return err
	}
	return window.UpdateSurface()
}

func main() {
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}

	if *traceProfile != "" {
		f, err := os.Create(*traceProfile)
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
		defer trace.Stop()
	}

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded")
	}

	cfg, err := core.ReadConfig(*configPath)
	if err != nil {
		log.WithError(err).Warn("could not read options, using defaults")
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	window := newWindow(cfg)
	defer window.Destroy()

	assets := newAssetManager(cfg)
	defer assets.Close()

	renderState := renderer.New(cfg.Renderer)
	mainPass := renderer.NewMainPass(renderState)
	presentPass := renderer.NewPresentPass(
		int(cfg.Renderer.WindowWidth), int(cfg.Renderer.WindowHeight))

	handler := input.NewHandler()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var cursorCaptured atomic.Bool
	handler.Register(&systemConsumer{cancel: cancel, captured: &cursorCaptured}, input.DispatchImmediate)

	world, err := scene.New(assets, &cfg, handler)
	if err != nil {
		log.WithError(err).Fatal("could not build scene")
	}

	timeService := core.NewTime(cfg.Time)
	timestep := timeService.Timestep()

	programSync := sync.WaitGroup{}

	/* Frame counter loop */
	programSync.Add(1)
	go func(ctx context.Context, wg *sync.WaitGroup) {
	CounterLoop:
		for {
			select {
			case <-ctx.Done():
				break CounterLoop
			default:
				currentCount := atomic.SwapInt64(&frameCounter, 0)
				fmt.Printf("\r\033[2K%d FPS", currentCount)
				time.Sleep(time.Second)
			}
		}
		wg.Done()
	}(ctx, &programSync)

	lastFrame := time.Now()
	var updateDebt time.Duration

MainLoop:
	for {
		select {
		case <-ctx.Done():
			log.Info("main loop exited")
			break MainLoop
		case <-timeService.EventTicker().C:
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					handler.UpdateKey(et.Keysym.Scancode, et.State == sdl.PRESSED)
				case *sdl.MouseMotionEvent:
					handler.UpdateMouseMovement(float64(et.XRel), float64(et.YRel))
				case *sdl.QuitEvent:
					cancel()
					continue MainLoop
				}
			}
		case <-timeService.FpsTicker().C:
			now := time.Now()
			updateDebt += now.Sub(lastFrame)
			lastFrame = now
			for updateDebt >= timestep {
				handler.ActionsTick()
				handler.MouseMovementTick(cursorCaptured.Load())
				world.Update()
				updateDebt -= timestep
			}

			mainPass.Draw(world.Draw(), world.ViewMatrix(), world.Light)
			frame := presentPass.Present(renderState.Framebuffer)
			if err := blitToWindow(window, frame.Pix,
				frame.Bounds().Dx(), frame.Bounds().Dy(), frame.Stride); err != nil {
				log.WithError(err).Error("present failed")
			}
			atomic.AddInt64(&frameCounter, 1)
		}
	}

	programSync.Wait()

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			panic(err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			panic(err)
		}
	}
}

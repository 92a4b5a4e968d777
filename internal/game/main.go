package game

import (
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func RunDesktop() {
	runtime.LockOSThread()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	settings, err := LoadSettings(os.Getenv("PAPERBOY_CONFIG"))
	if err != nil {
		logger.Fatal("settings", zap.Error(err))
	}
	SetSFXVolume(settings.SFXVolume)

	window, err := initWindow(settings.WindowWidth, settings.WindowHeight)
	if err != nil {
		logger.Fatal("window", zap.Error(err))
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		logger.Fatal("gl init", zap.Error(err))
	}

	if err := InitAudio(); err != nil {
		logger.Warn("audio init failed, continuing without sound", zap.Error(err))
	}

	// Seed from settings, environment or clock.
	seed := settings.Seed
	if s := os.Getenv("PAPERBOY_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", zap.Uint64("seed", seed))

	rend, err := NewRenderer()
	if err != nil {
		logger.Fatal("renderer", zap.Error(err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		logger.Fatal("font", zap.Error(err))
	}

	// Systems.
	world := NewWorld(seed)
	papers := NewPaperSystem()
	particles := NewParticleSystem(512, seed^0xBEAD)
	session := NewGameSession(settings.StartLives, settings.StartPapers)
	input := NewInput()
	bus := NewEventBus()

	// Player (nil until a run starts).
	var player *Player

	cam := Camera{Y: camHeight, Z: -camBack}

	// The simulation only emits events; sounds, dust and shake hang off them here.
	bus.Subscribe(EventThrow, func(e Event) { PlaySound(SoundThrow) })
	bus.Subscribe(EventDelivery, func(e Event) {
		PlaySound(SoundDelivery)
		particles.SpawnDelivery(e.Pos)
	})
	bus.Subscribe(EventCrash, func(e Event) {
		PlaySound(SoundCrash)
		particles.SpawnCrash(e.Pos)
		cam.AddShake(0.5, 0.4)
	})
	bus.Subscribe(EventRampJump, func(e Event) { PlaySound(SoundRamp) })
	bus.Subscribe(EventGameOver, func(e Event) { PlaySound(SoundGameOver) })

	// Street behind the menu screen.
	world.EnsureAhead(0)

	var blockScratch []*Block
	runCount := uint64(0)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch session.State {
		case StateMenu, StateGameOver:
			if input.JustPressed(window, glfw.KeyEnter) {
				PlaySound(SoundMenuSelect)
				runCount++
				runSeed := seed
				if settings.Seed == 0 {
					runSeed = splitmix64(seed + runCount)
				}
				session.StartRun(runSeed, world, &player, papers, particles)
				cam.Snap(player)
			}
			particles.Update(dt)

		case StatePaused:
			if input.JustPressed(window, glfw.KeyP) {
				session.TogglePause()
			}

		case StatePlaying:
			if input.JustPressed(window, glfw.KeyP) {
				session.TogglePause()
				break
			}

			// Input mapper: held keys become velocity, edges become actions.
			player.Steer(SteerAxis(window))
			if input.JustPressed(window, glfw.KeySpace) {
				player.Jump()
			}
			if input.JustPressed(window, glfw.KeyQ) {
				papers.Throw(player, -1, session, bus)
			}
			if input.JustPressed(window, glfw.KeyE) {
				papers.Throw(player, 1, session, bus)
			}

			// Per-frame simulation step.
			ApplyTier(TierFor(session.Distance), player, world, dt)
			player.Update(dt)
			world.EnsureAhead(player.Pos[2])
			blockScratch = CheckObstacles(player, world, session, bus, blockScratch)
			papers.Update(dt, world, session, bus)
			particles.Update(dt)
			session.Update(dt, player)
			session.CheckRunEnd(papers, bus)
		}

		cam.UpdateShake(dt, seed^uint64(now*1000))
		if player != nil {
			cam.Follow(player, dt)
		}

		proj := Projection(fbW, fbH)
		view := cam.View(playerOrDefault(player))
		rend.BeginFrame(proj, view, fbW, fbH)
		rend.DrawWorld(world)
		rend.DrawPapers(papers)
		if player != nil {
			rend.DrawPlayer(player, now)
		}
		rend.DrawParticles(particles)
		RenderHUD(rend, session, fbW, fbH)

		window.SwapBuffers()
	}

	logger.Info("bye", zap.Int("best_score", session.BestScore))
}

// playerOrDefault keeps the camera aimed somewhere sensible before the
// first run starts.
var menuPlayer = NewPlayer(0)

func playerOrDefault(p *Player) *Player {
	if p != nil {
		return p
	}
	return menuPlayer
}

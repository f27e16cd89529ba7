package main

import (
	"errors"
	"os"

	"github.com/alprun/alprun/config"
	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/entity"
	"github.com/alprun/alprun/ecs/render"
	"github.com/alprun/alprun/ecs/system"
	"github.com/alprun/alprun/input"
	"github.com/alprun/alprun/logging"
	"github.com/alprun/alprun/prefabs"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Game struct {
	cfg   config.Config
	log   *zap.SugaredLogger
	frame uint64

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     input.Source

	player ecs.Entity
	camera ecs.Entity

	tiles    *render.TileMapRenderSystem
	sprites  *render.SpriteRenderSystem
	overlay  *render.DebugOverlay
	drawErr  bool
	watcher  *prefabs.Watcher
	lastKeys string
}

func NewGame(cfg config.Config, src input.Source) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		log:       logging.L().Named("game"),
		world:     ecs.NewWorld(),
		scheduler: system.NewGameplayScheduler(),
		input:     src,
		tiles:     render.NewTileMapRenderSystem(),
		sprites:   render.NewSpriteRenderSystem(),
	}
	if cfg.Debug {
		g.overlay = render.NewDebugOverlay()
	}

	player, camera, err := entity.Spawn(g.world, cfg.Level)
	if err != nil {
		return nil, err
	}
	g.player, g.camera = player, camera
	g.log.Infow("scene ready", "level", cfg.Level, "player", player, "camera", camera)

	if cfg.WatchPrefabs {
		g.startWatcher()
	}
	return g, nil
}

func (g *Game) startWatcher() {
	if info, err := os.Stat("prefabs"); err != nil || !info.IsDir() {
		g.log.Warnw("prefab hot reload needs a prefabs/ directory next to the binary", "error", err)
		return
	}
	w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		g.log.Warnw("prefab hot reload disabled", "error", err)
		return
	}
	g.watcher = w
	g.log.Infow("watching prefabs")
}

func (g *Game) Update() error {
	g.frame++
	g.applyPrefabReloads()

	keys, err := g.input.Sample(g.frame)
	if err != nil {
		return err
	}
	if keys != nil && keys.Pressed(input.KeyEscape) {
		return ebiten.Termination
	}
	if ks, ok := keys.(input.KeySet); ok {
		if s := ks.String(); s != g.lastKeys {
			g.log.Debugw("keys", "frame", g.frame, "held", s)
			g.lastKeys = s
		}
	}

	g.scheduler.Update(g.world, ecs.Tick{
		Frame: g.frame,
		DT:    1 / float64(ebiten.TPS()),
		Keys:  keys,
	})
	return nil
}

// applyPrefabReloads respawns entities whose prefab changed on disk. It runs on the game
// goroutine so the world is never touched concurrently.
func (g *Game) applyPrefabReloads() {
	if g.watcher == nil {
		return
	}
	for drained := false; !drained; {
		select {
		case err, ok := <-g.watcher.Errors:
			if !ok {
				drained = true
			} else if err != nil {
				g.log.Warnw("prefab watcher", "error", err)
			}
		default:
			drained = true
		}
	}

	for _, name := range g.watcher.Drain() {
		var target *ecs.Entity
		switch name {
		case prefabs.PlayerPrefab:
			target = &g.player
		case prefabs.CameraPrefab:
			target = &g.camera
		default:
			g.log.Debugw("prefab changed, nothing to respawn", "prefab", name)
			continue
		}
		next, err := entity.Respawn(g.world, *target, name)
		if err != nil {
			g.log.Errorw("respawn failed, keeping old entity", "prefab", name, "error", err)
			continue
		}
		g.log.Infow("respawned", "prefab", name, "old", *target, "new", next)
		*target = next
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Window.ClearColor)
	b := screen.Bounds()
	view := render.NewView(g.world, b.Dx(), b.Dy())

	if err := g.tiles.Draw(g.world, screen, view); err != nil && !g.drawErr {
		g.log.Errorw("tile map draw", "error", err)
		g.drawErr = true
	}
	g.sprites.Draw(g.world, screen, view)
	if g.overlay != nil {
		g.overlay.Draw(g.world, screen, view)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the hot reload watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	if err != nil {
		return errors.Join(errors.New("close prefab watcher"), err)
	}
	return nil
}

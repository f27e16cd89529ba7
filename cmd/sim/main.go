// Command sim runs the gameplay systems headless, driven by a tengo input script, and logs
// the player's state every tick.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/alprun/alprun/config"
	"github.com/alprun/alprun/input"
	"github.com/alprun/alprun/logging"
	"github.com/alprun/alprun/prefabs"
)

func main() {
	script := flag.String("script", "walk_square", "input script in prefabs/scripts (.tengo optional)")
	ticks := flag.Int("ticks", 360, "number of ticks to simulate")
	tps := flag.Int("tps", 60, "ticks per second; dt is 1/tps")
	level := flag.String("level", "", "level name, empty for the map prefab default")
	logLevel := flag.String("log-level", "info", "log level")
	changes := flag.Bool("changes", false, "log only ticks where the state or frame changed")
	flag.Parse()

	if *tps <= 0 || *ticks < 0 {
		log.Fatalf("sim: tps must be positive and ticks non-negative")
	}

	logger, err := logging.Init(config.LogConfig{Level: *logLevel})
	if err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	src, err := prefabs.LoadScript(*script)
	if err != nil {
		logger.Fatalw("load script", "script", *script, "error", err)
	}
	in, err := input.NewScriptSource(*script, src)
	if err != nil {
		logger.Fatalw("compile script", "error", err)
	}

	var prev *Step
	err = Simulate(in, *level, *ticks, 1/float64(*tps), func(s Step) {
		if *changes && prev != nil && prev.State == s.State && prev.Index == s.Index {
			return
		}
		logger.Infow("tick",
			"frame", s.Frame,
			"keys", s.Keys,
			"state", s.State,
			"index", s.Index,
			"x", s.X,
			"y", s.Y,
			"camera_x", s.CameraX,
			"camera_y", s.CameraY,
		)
		prev = &s
	})
	if err != nil {
		logger.Errorw("simulation failed", "error", err)
		logging.Sync()
		os.Exit(1)
	}
}

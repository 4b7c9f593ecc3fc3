package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bossfight/ai"
	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/assets"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
)

func main() {
	headless := flag.Bool("headless", false, "run the fight without a window and print a summary")
	seconds := flag.Float64("seconds", 30, "simulated seconds for headless runs")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	arenaFile := flag.String("arena", prefabs.ArenaFile, "arena prefab (embedded name or file under prefabs/)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	killAfter := flag.Float64("kill-after", 0, "headless: kill the robot after this many seconds (0 disables)")
	seed := flag.Int64("seed", 0, "voice line seed (0 uses the clock)")
	watch := flag.Bool("watch", false, "hot reload prefabs from the prefabs/ directory")
	debug := flag.Bool("debug", false, "draw navigation paths")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal("invalid log level", "level", *logLevel, "err", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: !*headless,
		Prefix:          "bossfight",
		Level:           level,
	})

	if *tps <= 0 {
		logger.Fatal("tps must be positive", "tps", *tps)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	opts := arena.Options{
		ArenaFile: *arenaFile,
		Patrol:    *headless,
		Logger:    logger,
		Rand:      rand.New(rand.NewSource(*seed)),
		OnLevelChange: func(from, to int) {
			logger.Info("next level", "from", from, "to", to)
		},
	}

	if *headless {
		if err := runHeadless(opts, *seconds, *tps, *killAfter); err != nil {
			logger.Fatal("headless run failed", "err", err)
		}
		return
	}

	opts.LoadClip = loadClip
	opts.OnTransition = func(from, to ai.State) {
		logger.Debug("robot state", "from", from, "to", to)
	}
	game, err := NewGame(opts, *watch, *debug)
	if err != nil {
		logger.Fatal("load arena", "err", err)
	}
	defer game.Close()

	ebiten.SetTPS(*tps)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("bossfight")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", "err", err)
	}
}

func loadClip(file string) (component.ClipPlayer, error) {
	player, err := assets.LoadAudioPlayer(file)
	if err != nil {
		return nil, err
	}
	return player, nil
}

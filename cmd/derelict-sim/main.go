package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arcwelt/derelict/geom"
	"github.com/arcwelt/derelict/sim"
	"github.com/arcwelt/derelict/worldmap"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file. Defaults apply when empty.")
	duration := flag.Duration("duration", 10*time.Second, "How long to run the simulation.")
	bots := flag.Int("bots", 0, "Override the number of patrol bots (0 keeps the config value).")
	flag.Parse()

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = sim.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *bots > 0 {
		cfg.Bots.Count = *bots
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	m := worldmap.NewStation()
	if len(cfg.World.Layout) > 0 {
		m, err = worldmap.Parse(cfg.World.Layout)
		if err != nil {
			log.Fatal("bad map layout", zap.Error(err))
		}
	}

	state := sim.NewState(m, log)
	walls := state.BuildWalls()
	spawnBots(state, m, cfg.Bots)

	log.Info("simulation starting",
		zap.Int("width", m.Width), zap.Int("height", m.Height),
		zap.Int("walls", walls),
		zap.Int("bots", cfg.Bots.Count),
		zap.Duration("tick_rate", cfg.World.TickRate),
		zap.Duration("duration", *duration))

	report := &Report{
		Duration: *duration,
		Bots:     cfg.Bots.Count,
		Walls:    walls,
		TickRate: cfg.World.TickRate,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastTime := startTime
	ticker := time.NewTicker(cfg.World.TickRate)
	defer ticker.Stop()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now

			tickStart := time.Now()
			state.Update(dt)
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			report.TotalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.PathsPlanned = state.PathsPlanned()
	report.NodesExplored = state.NodesExplored()
	report.Systems = state.Scheduler().GetStats()
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished", zap.Int64("ticks", report.TotalTicks))

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("report failed", zap.Error(err))
	}
}

// spawnBots places bots on open cells spiraling out from the map corners
// and gives each the standard four-corner patrol loop.
func spawnBots(state *sim.State, m *worldmap.Map, cfg sim.BotsConfig) {
	corners := []worldmap.Cell{
		{X: 1, Y: 1},
		{X: m.Width - 2, Y: 1},
		{X: m.Width - 2, Y: m.Height - 2},
		{X: 1, Y: m.Height - 2},
	}

	var loop []geom.Vec2
	for _, c := range corners {
		if m.IsWall(c) {
			continue
		}
		x, z := m.GridToWorld(c)
		loop = append(loop, geom.V2(x, z))
	}
	if len(loop) == 0 {
		return
	}

	for i := 0; i < cfg.Count; i++ {
		start := loop[i%len(loop)]
		state.SpawnBot(start, loop, cfg.MoveSpeed, cfg.TurnSpeed)
	}
}

func newLogger(cfg sim.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/control"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/observability"
	"github.com/lixenwraith/orrery/terminal"
)

const (
	logDir      = "logs"
	logFileName = "orrery.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	configFlag  = flag.String("config", "", "Path to YAML config file")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/orrery.log")
	audioFlag   = flag.Bool("audio", false, "Enable sound cues")
	metricsFlag = flag.String("metrics", "", "Serve Prometheus metrics on this address, e.g. :9090")
	colorFlag   = flag.String("color", "", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}
	// Flags override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "audio":
			cfg.Audio.Enable = *audioFlag
		case "metrics":
			cfg.Metrics.Addr = *metricsFlag
		case "color":
			cfg.ColorMode = *colorFlag
		}
	})

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	term, err := terminal.New(terminal.ParseColorMode(cfg.ColorMode))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	crash := func(r any) {
		terminal.EmergencyReset(os.Stdout)
		// \r\n for raw mode
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mORRERY CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	var metrics *observability.Collector
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		if metrics, err = observability.NewCollector(reg); err != nil {
			log.Printf("metrics disabled: %v", err)
		} else {
			srv := startMetrics(cfg.Metrics.Addr, metrics)
			defer shutdownMetrics(srv)
		}
	}

	var sound control.Sounder
	if cfg.Audio.Enable {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	orrery := engine.New(cfg, engine.Deps{
		Terminal: term,
		Clock:    engine.WallClock{},
		Sound:    sound,
		Metrics:  metrics,
	})

	events := make(chan tcell.Event, 256)
	// Input polling runs outside the loop, PollEvent blocks
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(r)
			}
		}()
		for {
			ev := term.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := orrery.NewLoop(cfg.FrameInterval(), events)
	loop.SetCrashHandler(crash)
	loop.Start(ctx)
	defer loop.Stop()

	select {
	case <-loop.Done():
	case <-ctx.Done():
	}
	log.Printf("orrery: exiting after %d frames", loop.Frames())
}

func startMetrics(addr string, c *observability.Collector) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()
	log.Printf("metrics on %s/metrics", addr)
	return srv
}

func shutdownMetrics(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// setupLogging routes the standard logger to logs/orrery.log when debug is set and discards it otherwise
// The terminal owns stdout and stderr while running
// A log file over maxLogSize is renamed with a timestamp before a fresh one is opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("orrery-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

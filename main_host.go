//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"gel/app"
	"gel/config"
	"gel/hal"
	"gel/internal/buildinfo"
	"gel/preview"
	"gel/quarkgl"
)

func main() {
	var (
		headless    bool
		hz          int
		ticks       uint64
		configPath  string
		modelPath   string
		wireframe   bool
		dump        bool
		snapshot    string
		scale       int
		printConfig bool
		version     bool
		httpAddr    string
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 0, "Step rate (0 = value from config).")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N steps in headless mode (0 = run forever).")
	flag.StringVar(&configPath, "config", "", "YAML config file.")
	flag.StringVar(&modelPath, "model", "", "glTF/GLB model to show instead of the configured one.")
	flag.BoolVar(&wireframe, "wireframe", false, "Start in wireframe mode.")
	flag.BoolVar(&dump, "dump", false, "Log the camera and uniform matrices on the first frame.")
	flag.StringVar(&snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.IntVar(&scale, "scale", 2, "Window pixels per framebuffer pixel.")
	flag.BoolVar(&printConfig, "print-config", false, "Print the effective config as YAML and exit.")
	flag.StringVar(&httpAddr, "http", "", "Serve the live frame over HTTP on this address (e.g. :8080).")
	flag.BoolVar(&version, "version", false, "Print the build identifier and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fatal(err)
		}
	}
	if modelPath != "" {
		cfg.Model.Path = modelPath
	}
	if wireframe {
		cfg.Render.Mode = quarkgl.RenderWireframe.String()
	}
	if hz > 0 {
		cfg.Hz = hz
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	if printConfig {
		b, err := cfg.Marshal()
		if err != nil {
			fatal(err)
		}
		os.Stdout.Write(b)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newApp := func(h hal.HAL) func() error {
		log := h.Logger()
		log.WriteLineString("gel viewer " + buildinfo.Short())
		if configPath != "" {
			log.WriteLineString("config: " + configPath)
		}
		ac := app.Config{View: cfg, Dump: dump}
		if httpAddr != "" {
			srv := preview.New(log)
			go func() {
				if err := srv.ListenAndServe(ctx, httpAddr); err != nil {
					log.WriteLineString("preview: " + err.Error())
				}
			}()
			ac.Preview = srv
		}
		return app.New(h, ac)
	}

	if headless {
		hc := hal.HeadlessConfig{Width: cfg.Width, Height: cfg.Height, Hz: cfg.Hz, Ticks: ticks}
		if snapshot != "" {
			hc.Done = func(h hal.HAL) error { return app.WritePNG(h, snapshot) }
		}
		if err := hal.RunHeadless(ctx, newApp, hc); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
		return
	}

	wc := hal.WindowConfig{Width: cfg.Width, Height: cfg.Height, Scale: scale, TPS: cfg.Hz}
	if err := hal.RunWindow(newApp, wc); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

package main

import (
	"flag"
	"log"

	"MandelbrotViewer/internal/config"
	"MandelbrotViewer/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (defaults to the user config dir)")
	flag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Printf("[CONFIG] %v", err)
		}
		path = p
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadOrCreate(path)
		if err != nil {
			log.Printf("[CONFIG] Falling back to defaults: %v", err)
		}
		cfg = loaded
	}

	log.Println("Starting Mandelbrot Viewer")
	ui.RunApp(cfg)
}

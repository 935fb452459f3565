package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/tilepatrol/assets"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/server/core"
	"github.com/automoto/tilepatrol/shared/protocol"
	"github.com/automoto/tilepatrol/systems"
)

func main() {
	port := flag.Uint("port", cfg.Server.Port, "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Server tick rate (updates per second)")
	level := flag.String("level", cfg.Server.Level, "Level to start on (empty = first)")
	assetsDir := flag.String("assets", "", "Directory holding a levels/ folder (empty = embedded levels)")
	configPath := flag.String("config", "", "YAML tuning overrides")
	flag.Parse()

	if *configPath != "" {
		cfg.MustLoadOverrides(*configPath)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	levels, err := assets.LoadLevelsFrom(*assetsDir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if err := systems.InitPersistence("tilepatrol-server"); err != nil {
		log.Printf("[server] stats disabled: %v", err)
	}

	server, err := core.NewServer(levels, *level, *tickRate)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting tilepatrol server on port %d (tick rate: %d/s, level: %s)",
		*port, *tickRate, server.LevelName())
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

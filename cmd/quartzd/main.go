package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/quartzmc/quartzd/pkg/config"
	"github.com/quartzmc/quartzd/pkg/game"
	"github.com/quartzmc/quartzd/pkg/network"
	"github.com/quartzmc/quartzd/pkg/world"
)

func main() {
	configPath := flag.String("config", "quartz.yaml", "Path to the YAML configuration file")
	address := flag.String("address", "", "Server address to listen on (overrides config)")
	maxPlayers := flag.Int("max-players", 0, "Maximum number of players (overrides config)")
	motd := flag.String("motd", "", "Server MOTD (overrides config)")
	defaultGameMode := flag.String("default-gamemode", "", "Default game mode: survival, creative, adventure, spectator (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Invalid %s: %v", *configPath, err)
	}
	if *address != "" {
		cfg.Address = *address
	}
	if *maxPlayers != 0 {
		cfg.MaxPlayers = *maxPlayers
	}
	if *motd != "" {
		cfg.MOTD = *motd
	}
	if *defaultGameMode != "" {
		cfg.DefaultGameMode = *defaultGameMode
	}
	cfg.Favicon = loadFavicon(cfg.FaviconPath)

	spawn := world.BlockPos{X: 8, Y: 5, Z: 8}
	w := world.NewWorld(world.Overworld, spawn)

	srv := game.NewServer(game.Config{
		MaxPlayers:      cfg.MaxPlayers,
		MOTD:            cfg.MOTD,
		DefaultGameMode: config.GameModeByte(cfg.DefaultGameMode),
		Spawn:           spawn,
		Favicon:         cfg.Favicon,
	}, w)

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", cfg.Address, err)
	}

	registry := network.NewRegistry(srv.Incoming, srv)
	go func() {
		if err := registry.Serve(listener); err != nil {
			log.Printf("accept loop stopped: %v", err)
		}
	}()

	log.Printf("quartzd listening on %s (protocol 47, \"1.8\")", cfg.Address)

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan struct{})
	go func() {
		srv.Run(ctx)
		close(runDone)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down (received signal: %v)...", sig)
	case <-runDone:
		log.Println("shutting down (tick loop stopped)...")
	}

	cancel()
	listener.Close()
	log.Println("server stopped.")
}

// loadFavicon reads an optional PNG favicon and returns its base64 data
// URI, or "" if the file is absent.
func loadFavicon(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(data))
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/hanabi/client/fixture"
	"github.com/cbodonnell/hanabi/client/game"
	"github.com/cbodonnell/hanabi/client/network"
	"github.com/cbodonnell/hanabi/client/scenes"
	"github.com/cbodonnell/hanabi/pkg/config"
	"github.com/cbodonnell/hanabi/pkg/dispatch"
	"github.com/cbodonnell/hanabi/pkg/log"
	"github.com/cbodonnell/hanabi/pkg/messages"
	"github.com/cbodonnell/hanabi/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	fixturePath := flag.String("fixture", "", "Path to a table fixture (overrides config)")
	serverURL := flag.String("server-url", "", "WebSocket server URL (overrides config)")
	online := flag.Bool("online", false, "Send actions to the server instead of logging them")
	debug := flag.Bool("debug", false, "Show debug overlay")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *fixturePath != "" {
		cfg.Fixture = *fixturePath
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	table, err := fixture.Load(cfg.Fixture)
	if err != nil {
		panic(fmt.Sprintf("Failed to load fixture: %v", err))
	}
	// Several clients often share one terminal while testing a table.
	log.SetDefaultLogger(logger.WithField("player", table.Session.PlayerUs))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var transport dispatch.Transport = &offlineTransport{clientID: uint32(table.Session.PlayerUs)}
	var ping game.PingSource
	if *online {
		if cfg.ServerURL == "" {
			panic("A server URL is required to play online")
		}
		inbound := queue.NewInMemoryQueue[*messages.Message](cfg.OutboundQueueSize)
		client := network.NewWSClient(network.NewWSClientOptions{
			ServerURL:         cfg.ServerURL,
			ClientID:          uint32(table.Session.PlayerUs),
			OutboundQueueSize: cfg.OutboundQueueSize,
			Inbound:           inbound,
			Compress:          cfg.CompressMessages,
			PingInterval:      5 * time.Second,
		})
		if err := client.Connect(ctx); err != nil {
			panic(fmt.Sprintf("Failed to connect: %v", err))
		}
		defer client.Close()
		go func() {
			if err := client.Run(ctx); err != nil {
				var closedByServer *network.ErrConnectionClosedByServer
				if errors.As(err, &closedByServer) {
					log.Warn("%v", err)
					return
				}
				log.Error("WebSocket client stopped: %v", err)
			}
		}()
		go drainInbound(ctx, inbound)
		transport = client
		ping = client
	}

	scene, err := scenes.NewTableScene(scenes.NewTableSceneOptions{
		Fixture:   table,
		Transport: transport,
		Prompter:  newStdinPrompter(os.Stdin, os.Stdout),
		Width:     game.ScreenWidth,
		Height:    game.ScreenHeight,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create table scene: %v", err))
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug: *debug,
		Scene: scene,
		Ping:  ping,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Hanabi Card Clicks")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}

// drainInbound logs server messages until the context ends. Messages still
// queued at that point are dropped.
func drainInbound(ctx context.Context, inbound queue.Queue[*messages.Message]) {
	go func() {
		<-ctx.Done()
		inbound.Close()
		inbound.ClearQueue()
	}()
	for {
		msg, ok := inbound.Dequeue()
		if !ok {
			return
		}
		log.Debug("Server sent %s: %s", msg.Type, msg.Payload)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/vizard/internal/config"
	"github.com/vovakirdan/vizard/internal/game"
	"github.com/vovakirdan/vizard/internal/maps"
	"github.com/vovakirdan/vizard/internal/platform/tui"
	"github.com/vovakirdan/vizard/internal/spectate"
)

var (
	flagMapFile    string
	flagDifficulty string
	flagSpectate   string
)

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Play a map",
	Long: `Start playing the specified map (default: the "default" map).

Controls:
  h/j/k/l    - Dash
  w/e/b/W/E/B - Blink between vegetation runs
  0/^/$      - Blink along the contour of the row
  gg/G       - Blink to the top/bottom
  Ctrl+B/F/U/D - Blink a page or half a page
  Tab        - Pause
  r          - Retry (after the time is up)
  Esc        - Quit

Difficulty options:
  easy   - 180 seconds, 3 shards at once
  normal - 120 seconds, 2 shards at once
  hard   - 60 seconds, 1 shard at once
  zen    - No time limit

Examples:
  vizard play tutorial
  vizard play quarry --difficulty hard
  vizard play --map-file ./my-map.yaml
  vizard play --spectate :8080`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMapFile, "map-file", "", "Path to a custom map file (.yaml, .yml or .txt)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, zen")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve spectators over WebSocket on this address")
}

func runPlay(_ *cobra.Command, args []string) {
	mp, err := resolveMap(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'vizard maps' to see available maps.")
		os.Exit(1)
	}

	settings := loadSettings()
	if flagDifficulty != "" {
		preset := config.Preset(flagDifficulty)
		if err := preset.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyPreset(&settings, preset)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Store: store, Logger: logger, SessionID: "local"}
	if flagSpectate != "" {
		stop := startSpectating(flagSpectate, logger, &opts)
		defer stop()
	}

	g := game.New(mp, game.Options{Settings: settings, Logger: logger})
	if err := tui.Run(g, opts, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// resolveMap picks the --map-file, the named map or the default one.
func resolveMap(args []string) (*maps.Map, error) {
	if flagMapFile != "" {
		return maps.LoadFile(flagMapFile)
	}
	id := maps.DefaultID
	if len(args) > 0 {
		id = args[0]
	}
	return maps.Get(id)
}

// startSpectating runs a spectator hub and its HTTP server, and makes opts
// publish to it. The returned function stops both.
func startSpectating(addr string, logger *log.Logger, opts *tui.Options) func() {
	ctx, cancel := context.WithCancel(context.Background())
	hub := spectate.NewHub(logger)
	go hub.Run(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           hub.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("spectator server stopped", "error", err)
		}
	}()
	logger.Info("spectator server listening", "addr", addr)

	opts.Publisher = hub
	if opts.SessionID == "" {
		opts.SessionID = "local"
	}

	return func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("spectator server shutdown", "error", err)
		}
		cancel()
	}
}

// vizard is a terminal game for practising vim motions: collect shards on a
// tile map by dashing and blinking between vegetation.
//
// Usage:
//
//	vizard                   - Start the menu
//	vizard play [map]        - Play a map directly
//	vizard replay <file|id>  - Watch a replay log or a stored replay
//	vizard maps              - List available maps
//	vizard maps validate <f> - Check a custom map file
//	vizard scores [map]      - Show high scores
//	vizard serve             - Start SSH server for remote play
//	vizard mcp               - Serve sessions to an agent over MCP
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible shard spawns
//	--db <path>        - Set database path (default: ~/.vizard/scores.db)
//	--config <path>    - Settings file (default: ~/.vizard/config.yaml)
//	--maps-dir <path>  - Register every map file found in a directory
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vizard/internal/config"
	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/maps"
	"github.com/vovakirdan/vizard/internal/platform/tui"
	"github.com/vovakirdan/vizard/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagMapsDir string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vizard",
	Short: "Vizard - Learn vim motions by collecting shards",
	Long: `Vizard is a terminal game for practising vim motions. Dash with h/j/k/l,
blink between grass and stones with w, e, b, $, 0, ^, gg and G, and collect
the shards before the time runs out.

Available commands:
  play     - Play a map directly
  replay   - Watch a replay
  maps     - List and validate maps
  scores   - View high scores
  serve    - Start SSH server for remote play
  mcp      - Serve sessions to an agent over MCP

Without a command the interactive menu starts.

Examples:
  vizard
  vizard play tutorial
  vizard play --map-file ./my-map.txt
  vizard replay 12
  vizard serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return registerMapsDir(flagMapsDir)
	},
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.vizard/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps-dir", "", "Directory of custom maps")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (logs are discarded if empty)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	settings := loadSettings()
	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Store: store, Logger: logger}
	if err := tui.RunSession(opts, settings, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings loads the settings or exits.
func loadSettings() config.Settings {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	return settings
}

// newLogger returns a logger writing to --log-file. Without the flag logs
// are discarded, as the terminal belongs to the game.
func newLogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "vizard",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// openStore opens the scores database. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the session to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// registerMapsDir adds the maps found in dir to the built-in ones. Maps
// whose ID is already taken are skipped.
func registerMapsDir(dir string) error {
	if dir == "" {
		return nil
	}
	found, err := maps.LoadDir(dir)
	if err != nil {
		return fmt.Errorf("loading maps from %s: %w", dir, err)
	}
	for _, m := range found {
		if maps.Exists(m.ID) {
			fmt.Fprintf(os.Stderr, "Warning: map %q from %s is already registered\n", m.ID, m.FilePath)
			continue
		}
		maps.Register(m)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/game"
	"github.com/vovakirdan/vizard/internal/maps"
	"github.com/vovakirdan/vizard/internal/platform/tui"
	"github.com/vovakirdan/vizard/internal/replay"
)

var (
	flagReplayMap string
	flagHeadless  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <file|id>",
	Short: "Watch a replay",
	Long: `Play back a replay log file, or a replay stored in the scores database
when the argument is a number.

Replays must be watched at the tick rate they were recorded with.

Examples:
  vizard replay ./run.log --map tutorial
  vizard replay 12
  vizard replay 12 --headless`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayMap, "map", maps.DefaultID, "Map of a replay log file")
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run the replay without a terminal and print the result")
}

func runReplay(_ *cobra.Command, args []string) {
	settings := loadSettings()
	logger, closeLog := newLogger()
	defer closeLog()

	mapID, rec, err := loadReplay(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mp, err := maps.Get(mapID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g := game.New(mp, game.Options{Settings: settings, Logger: logger, Playback: rec})

	if flagHeadless {
		snap := playHeadless(g, rec)
		fmt.Printf("Map:      %s\n", mp.Title())
		fmt.Printf("Score:    %d\n", snap.Score)
		fmt.Printf("Duration: %.1fs\n", float64(snap.ElapsedMs)/1000)
		fmt.Printf("Player:   %v facing %s\n", snap.Player, snap.Direction)
		fmt.Printf("State:    %s\n", snap.State)
		return
	}

	if err := tui.Run(g, tui.Options{Logger: logger}, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}

// loadReplay reads a replay log file, or a stored replay when arg is an ID
// and no such file exists.
func loadReplay(arg string) (string, *replay.Recording, error) {
	if _, statErr := os.Stat(arg); statErr != nil {
		if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
			return loadStoredReplay(id)
		}
	}
	rec, err := replay.LoadFile(arg)
	if err != nil {
		return "", nil, err
	}
	return flagReplayMap, rec, nil
}

func loadStoredReplay(id int64) (string, *replay.Recording, error) {
	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store == nil {
		return "", nil, errors.New("stored replays need the scores database")
	}
	defer store.Close()

	entry, err := store.Replay(id)
	if err != nil {
		return "", nil, err
	}
	rec, err := replay.Parse(entry.Recording)
	if err != nil {
		return "", nil, fmt.Errorf("replay %d: %w", id, err)
	}
	return entry.MapID, rec, nil
}

// playHeadless steps g without a screen until the playback ends.
func playHeadless(g *game.Session, rec *replay.Recording) game.Snapshot {
	cfg := core.RuntimeConfig{TickRate: flagFPS}
	g.Reset(cfg)

	// The playback ends on the tick after its last event; allow some slack
	limit := (rec.Duration()/1000 + 2) * int64(max(1, flagFPS))
	for i := int64(0); i < limit && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	return g.Snapshot()
}

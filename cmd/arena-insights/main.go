package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ramonehamilton/arena-insights/internal/archive"
	"github.com/ramonehamilton/arena-insights/internal/companion"
	"github.com/ramonehamilton/arena-insights/internal/config"
	"github.com/ramonehamilton/arena-insights/internal/export"
	"github.com/ramonehamilton/arena-insights/internal/models"
)

var (
	configPath   = flag.String("config", "", "Path to config file (default: ~/.arena-insights/config.toml)")
	baseURL      = flag.String("base-url", "", "Companion API base URL (overrides config)")
	matchID      = flag.String("match", "", "Match ID for match-scoped commands")
	gameID       = flag.Int("game", 0, "Game ID to scope snapshot queries (0 = whole match)")
	formatFilter = flag.String("format", "", "Format filter (e.g., Ladder, Play)")
	exportFormat = flag.String("export-format", "", "Export format: json or csv (default from config)")
	timeout      = flag.Duration("timeout", 30*time.Second, "Overall command timeout")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: arena-insights [flags] <command>

Commands:
  matches        List matches (honors -format)
  timeline       Show the per-turn play timeline for -match
  summary        Show the play summary for -match
  opponent-cards List cards the opponent revealed in -match
  snapshots      List game state snapshots for -match (honors -game)
  stats          Show aggregate statistics (honors -format)
  formats        List formats present in the match history
  export         Download the match history (honors -export-format)
  archive        Fetch matches and plays into the local archive

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	transportConfig := &companion.TransportConfig{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.ParseTimeout(),
		MaxRetries:     cfg.API.MaxRetries,
		RetryBaseDelay: cfg.API.ParseRetryBaseDelay(),
		RateLimitDelay: cfg.API.ParseRateLimit(),
	}
	transport := companion.NewHTTPTransport(transportConfig)
	matchClient := companion.NewMatchClient(transport)
	gameplayClient := companion.NewGameplayClient(transport)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch command {
	case "matches":
		err = runMatches(ctx, matchClient)
	case "timeline":
		err = runTimeline(ctx, gameplayClient)
	case "summary":
		err = runSummary(ctx, gameplayClient)
	case "opponent-cards":
		err = runOpponentCards(ctx, gameplayClient)
	case "snapshots":
		err = runSnapshots(ctx, gameplayClient)
	case "stats":
		err = runStats(ctx, matchClient)
	case "formats":
		err = runFormats(ctx, matchClient)
	case "export":
		err = runExport(ctx, matchClient, cfg)
	case "archive":
		err = runArchive(ctx, matchClient, gameplayClient, cfg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("Command %s failed: %v", command, err)
	}
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	}
	return cfg, nil
}

// currentFilter builds the query filter from command-line flags.
func currentFilter() models.StatsFilter {
	filter := models.StatsFilter{}
	if *formatFilter != "" {
		filter.Format = formatFilter
	}
	return filter
}

func requireMatchID() (string, error) {
	if *matchID == "" {
		return "", fmt.Errorf("this command requires -match")
	}
	return *matchID, nil
}

func runExport(ctx context.Context, client *companion.MatchClient, cfg *config.Config) error {
	format := cfg.Export.DefaultFormat
	if *exportFormat != "" {
		format = *exportFormat
	}

	payload, err := client.ExportMatches(ctx, companion.ExportFormat(format))
	if err != nil {
		return err
	}

	writer := export.NewWriter(export.Options{
		Format:    export.Format(format),
		OutputDir: cfg.Export.OutputDir,
	})
	path, err := writer.Write(payload)
	if err != nil {
		return err
	}

	fmt.Printf("Exported match history to %s\n", path)
	return nil
}

func runArchive(ctx context.Context, matchClient *companion.MatchClient, gameplayClient *companion.GameplayClient, cfg *config.Config) error {
	if !cfg.Archive.Enabled {
		return fmt.Errorf("archive is disabled in config")
	}

	dbPath, err := cfg.Archive.ArchivePath()
	if err != nil {
		return err
	}

	store, err := archive.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	matches, err := matchClient.GetMatches(ctx, currentFilter())
	if err != nil {
		return err
	}
	if err := store.SaveMatches(ctx, matches); err != nil {
		return err
	}

	var playCount int
	for _, match := range matches {
		plays, err := gameplayClient.GetMatchPlays(ctx, match.ID)
		if err != nil {
			return err
		}
		if err := store.SavePlays(ctx, plays); err != nil {
			return err
		}
		playCount += len(plays)
	}

	fmt.Printf("Archived %d matches and %d plays to %s\n", len(matches), playCount, dbPath)
	return nil
}

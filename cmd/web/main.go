package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/trontec/extras-atlas/pkg/server"
	"github.com/trontec/extras-atlas/pkg/services/config"
	"github.com/trontec/extras-atlas/pkg/services/dashboard"
	"github.com/trontec/extras-atlas/pkg/services/source"
	"github.com/trontec/extras-atlas/pkg/store/duckdb"
	duckdbsnapshot "github.com/trontec/extras-atlas/pkg/store/duckdb/snapshot"
	"github.com/trontec/extras-atlas/pkg/store/sheets"
)

var (
	cfgPath     string
	profilePath string
	profileName string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Extras Atlas",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultProfile := fmt.Sprintf("%s/.extrascfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the app config file (optional)")
	rootCmd.Flags().StringVar(&profilePath, "profiles", defaultProfile,
		"Path to the .extrascfg profile file (default is $HOME/.extrascfg)")
	rootCmd.Flags().StringVar(&profileName, "profile", "default",
		"Profile name to use from the profile file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg := source.DefaultConfig()
	if cfgPath != "" {
		loaded, err := source.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if registry, err := config.NewRegistry(profilePath); err == nil {
		profile, err := registry.GetProfile(ctx, profileName)
		if err != nil {
			return fmt.Errorf("failed to read profile %q: %w", profileName, err)
		}
		applyProfile(cfg, profile)
		logger.Info().Msgf("Profile `%s` loaded from `%s`.", profileName, profilePath)
	} else {
		logger.Warn().Msgf("No profile file at `%s`; relying on config and sample data.", profilePath)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	cache, err := duckdbsnapshot.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create snapshot store: %w", err)
	}

	var fetcher source.Fetcher
	if cfg.SpreadsheetID != "" {
		client, err := sheets.NewClient(ctx, cfg.CredentialsFile)
		if err != nil {
			logger.Warn().Err(err).Msg("sheets client unavailable; using cache and sample data")
		} else {
			fetcher = client
		}
	}

	loader := source.NewLoader(cfg, fetcher, cache)
	svc := dashboard.NewService(loader)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" {
		host = "0.0.0.0"
	}
	if port == "" {
		port = "8080"
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Dashboard: svc,
		},
	})

	return api.Start()
}

func applyProfile(cfg *source.Config, p *config.Profile) {
	if p.SpreadsheetID != "" {
		cfg.SpreadsheetID = p.SpreadsheetID
	}
	if p.Worksheet != "" {
		cfg.Worksheet = p.Worksheet
	}
	if p.CredentialsFile != "" {
		cfg.CredentialsFile = p.CredentialsFile
	}
	if p.SamplePath != "" {
		cfg.SamplePath = p.SamplePath
	}
}

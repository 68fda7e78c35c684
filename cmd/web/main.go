package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/de-tools/budget-bee/pkg/enrich/watsonx"
	"github.com/de-tools/budget-bee/pkg/server"
	"github.com/de-tools/budget-bee/pkg/services/advisor"
	"github.com/de-tools/budget-bee/pkg/services/budget"
	"github.com/de-tools/budget-bee/pkg/services/config"
	"github.com/de-tools/budget-bee/pkg/services/goal"
	"github.com/de-tools/budget-bee/pkg/services/narrative"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profilesPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for BudgetBee",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (defaults and env vars apply when omitted)")
	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", "",
		"Path to the ini profiles file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if profilesPath != "" {
		registry, err := config.NewProfileRegistry(profilesPath)
		if err != nil {
			return fmt.Errorf("failed to load profiles from `%s`: %w", profilesPath, err)
		}
		profiles, _ := registry.GetProfiles(cmd.Context())
		logger.Info().Msgf("Profiles found at `%s` successfully loaded.", profilesPath)
		for _, name := range profiles {
			profile, err := registry.GetProfile(cmd.Context(), name)
			if err != nil {
				continue
			}
			logger.Info().Msgf("Name: `%s`, Persona: `%s`", profile.Name, profile.Persona)
		}
	}

	// A nil client simply disables enrichment; computed numbers never depend
	// on it.
	partialWatsonx := cfg.Watsonx.APIKey != "" || cfg.Watsonx.URL != ""
	var narrator *narrative.Service
	if client := watsonx.NewClient(cfg.Watsonx); client != nil {
		narrator = narrative.NewService(client)
		logger.Info().Msg("watsonx enrichment enabled")
	} else {
		narrator = narrative.NewService(nil)
		if partialWatsonx {
			logger.Warn().Msg("incomplete watsonx configuration, enrichment disabled")
		}
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Dependencies: server.Dependencies{
			Budget:   budget.NewAnalyzer(cfg.Thresholds),
			Goals:    goal.NewPlanner(),
			Adviser:  advisor.NewAdvisor(cfg.Benchmarks),
			Narrator: narrator,
		},
	})

	err = webAPI.Start()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

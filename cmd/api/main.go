package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/yigit/coachdesk/internal/pkg/logger"
	"github.com/yigit/coachdesk/internal/server"
)

// @title CoachDesk API
// @version 1.0
// @description Record store and dashboard for a coaching institute
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@coachdesk.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to the YAML configuration file")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

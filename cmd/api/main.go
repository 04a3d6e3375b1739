package main

import (
	"os"

	"github.com/mertc/degreetrack/internal/pkg/logger"
	"github.com/mertc/degreetrack/internal/server"
)

// @title DegreeTrack API
// @version 1.0
// @description API for tracking a student's progress toward degree completion

// @contact.name API Support
// @contact.email support@degreetrack.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// NewServer orchestrates config, logger, dataset load, DI and routing
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}

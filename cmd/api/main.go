package main

import (
	"context"
	"os"

	"github.com/oms-tech/reviews/internal/pkg/logger"
	"github.com/oms-tech/reviews/internal/server"
)

// @title Course Reviews API
// @version 1.0
// @description Verified course review submission, verification codes and page revalidation

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

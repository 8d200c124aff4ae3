package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spareround/backend/internal/config"
	v1 "github.com/spareround/backend/internal/controllers/v1"
	"github.com/spareround/backend/internal/engine"
	"github.com/spareround/backend/internal/host"
	"github.com/spareround/backend/internal/models"
	"github.com/spareround/backend/internal/router"
)

func main() {
	// A .env file is optional, the environment itself wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the directory the database lives in
	err = os.MkdirAll(filepath.Dir(cfg.DBFile), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(cfg.DBFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The loopback host stands in for the external execution framework,
	// deployments point the backend at the real one.
	h := &host.Loopback{}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(cfg, v1.Controller{
		Host:        h,
		Interceptor: engine.New(h),
	}, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/app"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/logging"
	"github.com/vancomm/minefield/internal/minefield"
)

var envPath string

func init() {
	const (
		defaultEnvPath = ".env"
		usage          = "dotenv file path"
	)
	flag.StringVar(&envPath, "env", defaultEnvPath, usage)
	flag.StringVar(&envPath, "e", defaultEnvPath, usage+" (shorthand)")
}

func main() {
	flag.Parse()

	if err := config.LoadDotenv(envPath); err != nil {
		logrus.Fatalf("unable to load %s: %s", envPath, err)
	}

	log, err := logging.FromEnv()
	if err != nil {
		logrus.Fatal("unable to set up logging: ", err)
	}
	minefield.Log = log

	sessionCfg, err := config.NewSession()
	if err != nil {
		log.Fatal("unable to read session config: ", err)
	}

	difficulty, err := config.DefaultDifficulty()
	if err != nil {
		log.Fatal("unable to read default difficulty: ", err)
	}

	limits, err := config.NewLimits()
	if err != nil {
		log.Fatal("unable to read board limits: ", err)
	}

	origins := config.NewOrigins()

	log.WithFields(logrus.Fields{
		"development": config.Development(),
		"origins":     origins,
		"addr":        config.Addr(),
		"difficulty":  difficulty.Name,
		"session_ttl": sessionCfg.TTL.String(),
		"max_cells":   limits.MaxCells,
	}).Debug("config")

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	a := app.New(log, app.Config{
		Session:    sessionCfg,
		Difficulty: difficulty,
		Origins:    origins,
		Limits:     *limits,
	})
	if err := a.Start(mainCtx, config.Addr()); err != nil {
		log.Error("exit reason: ", err)
		os.Exit(1)
	}
	log.Info("shut down")
}

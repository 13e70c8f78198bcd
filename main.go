package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/cardroom/dealerd/config"
	"github.com/cardroom/dealerd/server"
	"github.com/cardroom/dealerd/store"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("bad configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st store.Store
	if cfg.MongoURI != "" {
		mongo, err := store.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			logger.WithError(err).Fatal("mongo connect failed")
		}
		defer mongo.Close(context.Background())
		st = mongo
		logger.Info("using mongo store")
	} else {
		st = store.NewMemory()
		logger.Info("using in-memory store")
	}

	logger.WithFields(logrus.Fields{
		"variant": cfg.Variant,
		"players": cfg.Players,
	}).Info("starting dealer")

	srv := server.NewServer(cfg, logger, st)
	if err := srv.Start(ctx); err != nil {
		logger.WithError(err).Fatal("server failed")
	}
}

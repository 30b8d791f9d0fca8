package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jmcavoy/breach/internal/config"
	"github.com/jmcavoy/breach/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	configFile := flag.String("config", "", "path to balance YAML (defaults used if empty)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	balance := config.FromEnv()
	if *configFile != "" {
		balance, err = config.Load(*configFile)
		if err != nil {
			logger.Fatal("load balance config", zap.Error(err))
		}
	}

	srv := web.NewServer(balance, logger)
	if err := srv.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}

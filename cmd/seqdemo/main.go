package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/on-the-ground/autoseq_go/internal/democli"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := democli.NewRootCommand(logger).Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mikey/student-lookup/internal/core"
	"github.com/mikey/student-lookup/internal/di"
	"github.com/mikey/student-lookup/internal/email"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build application container: %v\n", err)
		os.Exit(1)
	}

	err = container.Invoke(func(
		logger *zap.Logger,
		collector *email.Collector,
		service *core.LookupService,
	) {
		defer logger.Sync()

		addresses, err := collector.Collect()
		if err != nil {
			var invalid *email.InvalidAddressError
			if errors.As(err, &invalid) {
				logger.Fatal("Invalid email address", zap.String("email", invalid.Address))
			}
			logger.Fatal("Failed to collect email addresses", zap.Error(err))
		}

		if err := service.Run(context.Background(), addresses); err != nil {
			logger.Fatal("Lookup failed", zap.Error(err))
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run lookup: %v\n", err)
		os.Exit(1)
	}
}

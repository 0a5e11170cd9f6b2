// Command nearby prints the customers within range of a target location.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/nearby/internal/adapters/driven/config/file"
	"github.com/custodia-labs/nearby/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/nearby/internal/adapters/driving/cli"
	"github.com/custodia-labs/nearby/internal/connectors/filesystem"
	"github.com/custodia-labs/nearby/internal/converters"
	"github.com/custodia-labs/nearby/internal/core/ports/driven"
	"github.com/custodia-labs/nearby/internal/core/services"
	"github.com/custodia-labs/nearby/internal/decoders"
	"github.com/custodia-labs/nearby/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore("")
	if err != nil {
		// Searches still work without a writable config directory.
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
		cli.SetConfigPath(fileStore.Path())
	}

	coordinates := services.NewCoordinateService()
	customers := services.NewCustomerService(coordinates)
	nearby := services.NewNearbyService(
		filesystem.New(),
		decoders.NewDefaultRegistry(),
		converters.NewCustomerConverter(),
		customers,
	)

	cli.SetVersion(version)
	cli.SetServices(nearby, services.NewSettingsService(configStore))

	return cli.Execute(ctx)
}

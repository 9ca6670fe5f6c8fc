// Command booksim profiles a directory of plain-text books and ranks the
// most similar pairs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/booksim/internal/adapters/driven/config/file"
	"github.com/custodia-labs/booksim/internal/adapters/driven/report/textfile"
	"github.com/custodia-labs/booksim/internal/adapters/driving/cli"
	"github.com/custodia-labs/booksim/internal/connectors/filesystem"
	"github.com/custodia-labs/booksim/internal/core/domain"
	"github.com/custodia-labs/booksim/internal/core/ports/driving"
	"github.com/custodia-labs/booksim/internal/core/services"
	"github.com/custodia-labs/booksim/internal/normalisers"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		OpenSettings: openSettings,
		NewCorpus:    newCorpus,
	})

	if err := cli.Execute(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func openSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

func newCorpus(settings domain.AppSettings) driving.CorpusService {
	return services.NewCorpusService(
		filesystem.Builder,
		normalisers.Default(),
		textfile.New(settings.Output),
		settings,
	)
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/Jacobbrewer1/concierge/pkg/logging"
	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// A .env file is optional, the environment wins over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalln(fmt.Errorf("error loading .env file: %w", err))
	}

	a, err := InitializeApp()
	if err != nil {
		log.Fatalln(err)
	}
	slog.SetDefault(a.Log())

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		a.Debug(fmt.Sprintf(format, args...))
	})); err != nil {
		a.Warn("Error setting GOMAXPROCS", slog.String(logging.KeyError, err.Error()))
	}

	a.Info("Starting application")
	if err := a.Run(); err != nil {
		a.Error("Error running application", slog.String(logging.KeyError, err.Error()))
		os.Exit(1)
	}
}

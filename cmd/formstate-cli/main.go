package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/formdef"
	"github.com/goliatone/go-formstate/pkg/model"
	"github.com/goliatone/go-formstate/pkg/renderers/tui"
)

type config struct {
	Source   string `env:"FORMSTATE_SOURCE" envDefault:"forms"`
	Form     string `env:"FORMSTATE_FORM"`
	Format   string `env:"FORMSTATE_FORMAT" envDefault:"json"`
	LogLevel string `env:"FORMSTATE_LOG_LEVEL" envDefault:"warn"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	fm, err := loadForm(cfg.Source, cfg.Form)
	if err != nil {
		return err
	}
	logger.Debug("form loaded", "form", fm.ID, "source", cfg.Source, "fields", len(fm.Fields))

	ctrl := form.NewController(
		form.WithLogger(logger),
		form.WithCallbacks(form.Callbacks{
			FinishFailed: func(values map[string]string) {
				logger.Info("submit rejected", "form", fm.ID, "fields", len(values))
			},
		}),
	)
	if err := formdef.Bind(ctrl, fm, formdef.NewCatalog()); err != nil {
		return err
	}

	session := tui.New(
		tui.WithPromptDriver(tui.NewSurveyDriver(stderr)),
		tui.WithOutputFormat(tui.OutputFormat(cfg.Format)),
	)
	payload, runErr := session.Run(ctx, ctrl, fm)
	if payload != nil {
		fmt.Fprintln(stdout, string(payload))
	}
	return runErr
}

// loadConfig reads FORMSTATE_* variables (a local .env file is honoured)
// and lets command-line flags override them.
func loadConfig(args []string) (config, error) {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("formstate: parse env: %w", err)
	}

	fs := flag.NewFlagSet("formstate", flag.ContinueOnError)
	fs.StringVar(&cfg.Source, "source", cfg.Source, "definition file or directory")
	fs.StringVar(&cfg.Form, "form", cfg.Form, "form id to run (optional when the source holds one form)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: json, form or pretty")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	switch tui.OutputFormat(cfg.Format) {
	case tui.OutputFormatJSON, tui.OutputFormatFormURLEncoded, tui.OutputFormatPrettyText:
	default:
		return config{}, fmt.Errorf("formstate: unknown output format %q", cfg.Format)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("formstate: log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func loadForm(source, id string) (model.FormModel, error) {
	info, err := os.Stat(source)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("formstate: source: %w", err)
	}

	var store *formdef.Store
	if info.IsDir() {
		store, err = formdef.LoadFS(os.DirFS(source))
		if err != nil {
			return model.FormModel{}, err
		}
	} else {
		data, readErr := os.ReadFile(source)
		if readErr != nil {
			return model.FormModel{}, fmt.Errorf("formstate: read %s: %w", source, readErr)
		}
		store, err = formdef.NewStore(data, source)
		if err != nil {
			return model.FormModel{}, err
		}
	}

	if id == "" {
		ids := store.IDs()
		if len(ids) != 1 {
			return model.FormModel{}, fmt.Errorf("formstate: -form is required, available: %s", strings.Join(ids, ", "))
		}
		id = ids[0]
	}
	return store.Form(id)
}

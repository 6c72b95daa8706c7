package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/naveenspark/chipvax/internal/batch"
	"github.com/naveenspark/chipvax/internal/chiplist"
	"github.com/naveenspark/chipvax/internal/config"
	"github.com/naveenspark/chipvax/internal/logging"
	"github.com/naveenspark/chipvax/internal/tui"
	"github.com/naveenspark/chipvax/pkg/client"
	"github.com/naveenspark/chipvax/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args, os.Getenv, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// arguments are the positional command-line arguments.
type arguments struct {
	username     string
	password     string
	date         string
	manufacturer string
	vaccineName  string
	batchNumber  string
	file         string
}

func parseArgs(args []string) (arguments, error) {
	if len(args) != 7 {
		return arguments{}, fmt.Errorf("expected 7 arguments, got %d", len(args))
	}
	return arguments{
		username:     args[0],
		password:     args[1],
		date:         args[2],
		manufacturer: args[3],
		vaccineName:  args[4],
		batchNumber:  args[5],
		file:         args[6],
	}, nil
}

// run is main with its process dependencies passed in. Per-chip failures
// never make it return an error; only setup failures do.
func run(ctx context.Context, args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) > 1 {
		switch args[1] {
		case "--version", "version", "-v":
			fmt.Fprintln(stdout, "chipvax "+version)
			return nil
		case "help", "--help", "-h":
			printHelp(stdout)
			return nil
		}
	}

	a, err := parseArgs(args[1:])
	if err != nil {
		printUsage(stderr)
		return err
	}

	dotenv, err := config.LoadDotEnv(".env")
	if err != nil {
		return err
	}
	cfg, err := config.Load(getenv, dotenv)
	if err != nil {
		return err
	}
	log := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	vaccination, err := domain.NewVaccination(a.date, a.manufacturer, a.vaccineName, a.batchNumber)
	if err != nil {
		return err
	}

	if a.password == "-" {
		if a.password, err = promptPassword(stdin, stderr); err != nil {
			return err
		}
	}
	if a.password == "" {
		return fmt.Errorf("empty password")
	}

	chips, err := chiplist.Read(a.file)
	if err != nil {
		return err
	}

	c := client.New(cfg.APIURL, a.username, a.password, client.WithTimeout(cfg.Timeout))
	if len(chips) > 0 {
		// Authenticate before the loop so a rejected login ends the run
		// instead of failing every chip.
		if err := c.Login(ctx); err != nil {
			return fmt.Errorf("authenticate as %s: %w", a.username, err)
		}
		log.Debug(ctx, "authenticated", "api_url", cfg.APIURL, "username", a.username)
	}

	userID := domain.UserID(a.username)
	if cfg.UI == config.UITUI {
		if logging.IsTerminal(stdout) {
			return runInteractive(ctx, c, vaccination, userID, chips, log, stdin, stdout)
		}
		log.Warn(ctx, "stdout is not a terminal, falling back to plain output")
	}

	runner := batch.NewRunner(c, vaccination, userID, log)
	runner.Run(ctx, chips, func(res batch.Result) {
		if res.Outcome == batch.OutcomeNotFound {
			fmt.Fprintf(stdout, "Animal %s not found\n", res.Chip)
		}
		fmt.Fprintln(stdout, ".")
	})

	fmt.Fprintln(stdout, "OK")
	return nil
}

// runInteractive runs the batch behind the progress view. Logging is muted
// while the view owns the terminal; failures are logged once it closes.
func runInteractive(ctx context.Context, registry batch.Registry, v domain.Vaccination, userID string, chips []string, log logging.Logger, stdin io.Reader, stdout io.Writer) error {
	runner := batch.NewRunner(registry, v, userID, logging.Discard())
	title := fmt.Sprintf("CHIPVAX  %s · %s", v.Name, v.Date.Format("2006-01-02"))

	report, err := tui.Run(ctx, runner, chips, title, stdin, stdout)
	if err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	log = log.With("run_id", report.RunID.String())
	for _, res := range report.Results {
		switch res.Outcome {
		case batch.OutcomeNotFound:
			log.Warn(ctx, "animal not found", "chip", res.Chip)
		case batch.OutcomeFailed:
			log.Error(ctx, "vaccination failed", "chip", res.Chip, "err", res.Err)
		}
	}
	log.Info(ctx, "batch finished",
		"processed", report.Processed(),
		"succeeded", report.Succeeded,
		"not_found", report.NotFound,
		"failed", report.Failed,
		"cancelled", report.Cancelled)

	fmt.Fprintln(stdout, "OK")
	return nil
}

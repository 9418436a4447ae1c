// Command intersperse-bench compares the throughput of the ways of draining
// the intersperse adapters.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/achille-roussel/intersperse-go/internal/bench"
	"github.com/achille-roussel/intersperse-go/internal/config"
	"github.com/achille-roussel/intersperse-go/internal/console"
	"github.com/achille-roussel/intersperse-go/internal/report"
	"github.com/achille-roussel/intersperse-go/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "intersperse-bench: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("intersperse-bench", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "path of a TOML configuration file")
	elements := flags.Int("elements", 0, "number of elements in the interspersed sequence")
	trials := flags.Int("trials", 0, "number of trials of each benchmark")
	workloads := flags.String("workloads", "", "comma separated workloads to run ("+strings.Join(config.Workloads, ",")+")")
	modes := flags.String("modes", "", "comma separated modes to run ("+strings.Join(config.Modes, ",")+")")
	database := flags.String("db", "", "SQLite file recording the runs")
	jsonOutput := flags.Bool("json", false, "print results as JSON")
	verbose := flags.Bool("v", false, "verbose output")
	quiet := flags.Bool("q", false, "quiet output")
	history := flags.Int("history", 0, "print the given number of recorded runs instead of running benchmarks")

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "elements":
			cfg.Elements = *elements
		case "trials":
			cfg.Trials = *trials
		case "workloads":
			cfg.Workloads = splitList(*workloads)
		case "modes":
			cfg.Modes = splitList(*modes)
		case "db":
			cfg.Database = *database
		case "json":
			cfg.JSON = *jsonOutput
		case "v":
			cfg.Verbose = *verbose
		case "q":
			cfg.Quiet = *quiet
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	level := console.Normal
	switch {
	case cfg.Verbose:
		level = console.Verbose
	case cfg.Quiet:
		level = console.Quiet
	}
	logger := console.New(stderr, "[bench] ", level)

	var db *store.Store
	if cfg.Database != "" {
		s, err := store.New(store.WithFile(cfg.Database))
		if err != nil {
			return fmt.Errorf("open %s: %w", cfg.Database, err)
		}
		defer s.Close()
		db = s
	}

	if *history > 0 {
		if db == nil {
			return fmt.Errorf("%w: -history requires a database", config.ErrInvalid)
		}
		return printHistory(stdout, db, *history, cfg.JSON)
	}

	modeList := make([]bench.Mode, len(cfg.Modes))
	for i, m := range cfg.Modes {
		modeList[i] = bench.Mode(m)
	}

	logger.Printf("running %d workloads in %d modes, %d trials over %d elements",
		len(cfg.Workloads), len(modeList), cfg.Trials, cfg.Elements)

	startedAt := time.Now()
	runner := bench.NewRunner(cfg.Elements, cfg.Trials, logger)
	results, err := runner.Run(ctx, cfg.Workloads, modeList)
	if err != nil {
		return err
	}
	logger.Successf("completed in %v", time.Since(startedAt).Round(time.Millisecond))

	if db != nil {
		id, err := db.SaveRun(store.Run{
			StartedAt: startedAt,
			Elements:  cfg.Elements,
			Trials:    cfg.Trials,
			Results:   results,
		})
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		logger.Verbosef("recorded run %s in %s", id, cfg.Database)
	}

	if cfg.JSON {
		return report.JSON(stdout, results)
	}
	_, err = io.WriteString(stdout, report.Tree(title(startedAt, cfg.Elements), results))
	return err
}

func printHistory(w io.Writer, s *store.Store, limit int, asJSON bool) error {
	runs, err := s.Runs(limit)
	if err != nil {
		return fmt.Errorf("load runs: %w", err)
	}

	for _, r := range runs {
		if asJSON {
			if err := report.JSON(w, r.Results); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, report.Tree(r.ID+" "+title(r.StartedAt, r.Elements), r.Results)); err != nil {
			return err
		}
	}
	return nil
}

func title(startedAt time.Time, elements int) string {
	return fmt.Sprintf("%s (%d elements)", startedAt.Format(time.DateTime), elements)
}

func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

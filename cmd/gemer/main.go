//go:build !lambda

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"gem-optimizer/internal/catalog"
	"gem-optimizer/internal/config"
	"gem-optimizer/internal/optimizer"
	"gem-optimizer/internal/scenario"
)

// BatchOutput is the JSON-serializable result of a run over several scenarios.
type BatchOutput struct {
	Date    string           `json:"date"`
	Workers int              `json:"workers"`
	Results []ScenarioResult `json:"results"`
	TotalMs int64            `json:"totalMs"`
}

func printTable(results []ScenarioResult, totalMs int64) {
	fmt.Printf("%-24s %12s %-16s %8s\n", "Scenario", "Gain", "Food", "Time")
	fmt.Printf("%-24s %12s %-16s %8s\n", "------------------------", "------------", "----------------", "--------")
	totalGain := 0.0
	for _, r := range results {
		totalGain += r.Gain
		fmt.Printf("%-24s %12.2f %-16s %7.1fs\n", r.Name, r.Gain, r.Food, float64(r.TimeMs)/1000)
	}
	fmt.Printf("%-24s %12s %-16s %8s\n", "------------------------", "------------", "----------------", "--------")
	fmt.Printf("%-24s %12.2f %-16s %7.1fs\n", "TOTAL", totalGain, "", float64(totalMs)/1000)
}

func printSingle(r ScenarioResult) {
	fmt.Printf("Running took %v seconds.\n", float64(r.TimeMs)/1000)
	fmt.Printf("%sTotal gain of this build is %v\n", r.Report, r.Gain)
}

func loadPool(path string) (*optimizer.Pool, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

const usage = `Usage: gemer [flags] <scenario.yaml> [scenario.yaml...]

Positional arguments:
  scenario.yaml   Starting stats, requirements, build, rotation and options

Flags:
`

func main() {
	jsonOut := flag.Bool("json", false, "Output results as JSON")
	verbose := flag.Bool("verbose", false, "Print detailed search progress to stderr")
	catalogPath := flag.String("catalog", "", "Gem/enchantment/food catalog (.json or .json.br); overrides the config")
	configPath := flag.String("config", "", "Config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if *catalogPath != "" {
		cfg.Catalog = *catalogPath
	}
	pool, err := loadPool(cfg.Catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log.Info("[init] catalog loaded", "gems", len(pool.Gems), "foods", len(pool.Foods))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var results []ScenarioResult
	var totalMs int64
	for i, path := range args {
		sc, err := scenario.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if len(args) > 1 {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s ...\n", i+1, len(args), sc.Name)
		}
		r, err := runScenario(ctx, sc, pool, cfg.Optimizer(), log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", sc.Name, err)
			os.Exit(1)
		}
		results = append(results, r)
		totalMs += r.TimeMs
	}

	switch {
	case *jsonOut:
		out := BatchOutput{
			Date:    time.Now().UTC().Format(time.RFC3339),
			Workers: runtime.GOMAXPROCS(0),
			Results: results,
			TotalMs: totalMs,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
	case len(results) == 1:
		printSingle(results[0])
	default:
		for _, r := range results {
			fmt.Printf("== %s ==\n%s\n", r.Name, r.Report)
		}
		printTable(results, totalMs)
	}
}

// Command benchmark runs a fixed prompt set against every available
// provider, saves the full results as timestamped JSON, and prints a summary
// table with per-provider success rates.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"

	"github.com/deepnoodle-ai/switchboard/log"
	"github.com/deepnoodle-ai/switchboard/manager"
	_ "github.com/deepnoodle-ai/switchboard/providers/all"
)

var errorStyle = color.New(color.FgRed)

var testPrompts = []string{
	"Explain the concept of machine learning in 3 sentences.",
	"What are the key differences between Python and JavaScript?",
	"Write a short poem about technology and nature.",
	"Summarize the impact of artificial intelligence on healthcare.",
	"How would you explain quantum computing to a 10-year-old?",
}

func main() {
	var providerList, logLevel string
	flag.StringVar(&providerList, "providers", "", "comma-separated providers to benchmark (default: all available)")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	godotenv.Load()

	logger := log.New(log.LevelFromString(logLevel))
	m, err := manager.New(manager.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	available := m.AvailableProviders()
	if len(available) == 0 {
		errorStyle.Println("No API keys found. Add at least one API key to your .env file.")
		return
	}
	fmt.Printf("Found API keys for: %s\n", strings.Join(available, ", "))

	targets := available
	if providerList != "" {
		targets = intersect(strings.Split(providerList, ","), available)
	}
	if len(targets) == 0 {
		errorStyle.Println("No valid providers to benchmark.")
		return
	}
	fmt.Printf("Benchmarking providers: %s\n", strings.Join(targets, ", "))
	fmt.Println(strings.Repeat("=", 60))

	results := m.CompareProviders(context.Background(), targets, testPrompts)

	filename := fmt.Sprintf("benchmark_results_%s.json", time.Now().Format("20060102-150405"))
	if err := m.SaveBenchmark(results, filename); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nBenchmark Summary:")
	fmt.Println(strings.Repeat("-", 72))
	fmt.Println(row("Provider", "Model", "Avg Time", "Avg Length", "Success"))
	fmt.Println(strings.Repeat("-", 72))
	for _, name := range targets {
		report := results.Providers[name]
		if report.Error != "" {
			fmt.Println(row(name, "ERROR", "-", "-", "-"))
			continue
		}
		success := 0
		for _, test := range report.Tests {
			if test.Success {
				success++
			}
		}
		fmt.Println(row(name,
			runewidth.Truncate(report.Model, 25, "…"),
			fmt.Sprintf("%.2fs", report.AverageTime),
			fmt.Sprintf("%d", report.AverageCharacters),
			fmt.Sprintf("%d/%d", success, len(report.Tests)),
		))
	}
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("Full results saved to %s\n", filename)
}

func row(provider, model, avgTime, avgLength, success string) string {
	return runewidth.FillRight(provider, 15) +
		runewidth.FillRight(model, 27) +
		runewidth.FillRight(avgTime, 10) +
		runewidth.FillRight(avgLength, 12) +
		success
}

func intersect(requested, available []string) []string {
	set := map[string]bool{}
	for _, name := range available {
		set[name] = true
	}
	var out []string
	for _, name := range requested {
		name = strings.TrimSpace(name)
		if set[name] {
			out = append(out, name)
		}
	}
	return out
}

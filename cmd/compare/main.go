// Command compare sends a single prompt to every available provider and
// prints each response followed by a timing summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"

	"github.com/deepnoodle-ai/switchboard/log"
	"github.com/deepnoodle-ai/switchboard/manager"
	_ "github.com/deepnoodle-ai/switchboard/providers/all"
)

var (
	boldStyle  = color.New(color.Bold)
	errorStyle = color.New(color.FgRed)
)

func main() {
	var prompt, systemPrompt, providerList, logLevel string
	flag.StringVar(&prompt, "prompt", "What are the three most important factors in software design?", "prompt to send")
	flag.StringVar(&systemPrompt, "system", "You are a helpful AI assistant. Provide a concise and accurate response.", "system prompt")
	flag.StringVar(&providerList, "providers", "", "comma-separated providers to compare (default: all available)")
	flag.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
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
	targets := available
	if providerList != "" {
		targets = intersect(strings.Split(providerList, ","), available)
	}
	if len(targets) == 0 {
		errorStyle.Println("No valid providers to test.")
		return
	}

	fmt.Printf("Testing providers: %s\n", strings.Join(targets, ", "))
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Prompt: %s\n", prompt)
	fmt.Printf("System: %s\n", systemPrompt)
	fmt.Println(strings.Repeat("=", 60))

	results := m.CompareProviders(context.Background(), targets, []string{prompt},
		manager.WithSystemPrompt(systemPrompt))

	for _, name := range targets {
		report := results.Providers[name]
		boldStyle.Printf("\nTesting %s...\n", name)
		if report.Error != "" {
			errorStyle.Printf("Error with %s: %s\n", name, report.Error)
			continue
		}
		test := report.Tests[0]
		fmt.Printf("Model: %s\n", report.Model)
		fmt.Printf("Time: %.2fs\n", test.Time)
		fmt.Printf("Length: %d characters\n", len(test.Response))
		fmt.Println(strings.Repeat("-", 40))
		fmt.Println(test.Response)
		fmt.Println(strings.Repeat("-", 40))
	}

	fmt.Println("\nSummary:")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(row("Provider", "Model", "Time", "Length"))
	fmt.Println(strings.Repeat("-", 60))
	for _, name := range targets {
		report := results.Providers[name]
		if report.Error != "" {
			fmt.Println(row(name, "ERROR", "-", "-"))
			continue
		}
		test := report.Tests[0]
		fmt.Println(row(name,
			runewidth.Truncate(report.Model, 25, "…"),
			fmt.Sprintf("%.2fs", test.Time),
			fmt.Sprintf("%d", len(test.Response)),
		))
	}
	fmt.Println(strings.Repeat("-", 60))
}

func row(provider, model, elapsed, length string) string {
	return runewidth.FillRight(provider, 15) +
		runewidth.FillRight(model, 27) +
		runewidth.FillRight(elapsed, 10) +
		length
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

package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Comparison is the result of running the same prompts across multiple
// providers. The JSON shape matches the saved benchmark files.
type Comparison struct {
	Timestamp string                     `json:"timestamp"`
	Providers map[string]*ProviderReport `json:"providers"`
}

// ProviderReport aggregates one provider's test runs. When the provider
// could not be exercised at all, Error is set and the other fields are zero.
type ProviderReport struct {
	Model             string        `json:"model,omitempty"`
	AverageTime       float64       `json:"average_time,omitempty"`
	AverageCharacters int           `json:"average_characters,omitempty"`
	Tests             []*TestResult `json:"tests,omitempty"`
	Error             string        `json:"error,omitempty"`
}

// TestResult records a single prompt run. Time is in seconds. Success means
// the response carries no error sentinel; failed runs still contribute their
// time and the length of the error text to the provider's averages.
type TestResult struct {
	Prompt   string  `json:"prompt"`
	Response string  `json:"response"`
	Time     float64 `json:"time"`
	Success  bool    `json:"success"`
}

// CompareProviders runs every prompt against every named provider, strictly
// sequentially. A provider that cannot be exercised (unknown name, missing
// credential, failed construction) gets an error-only report and the
// comparison continues with the rest.
func (m *Manager) CompareProviders(ctx context.Context, names []string, prompts []string, opts ...CallOption) *Comparison {
	comparison := &Comparison{
		Timestamp: time.Now().Format(time.RFC3339),
		Providers: map[string]*ProviderReport{},
	}
	for _, name := range names {
		m.logger.Info("comparing provider", "provider", name, "prompts", len(prompts))
		comparison.Providers[name] = m.runProvider(ctx, name, prompts, opts)
	}
	return comparison
}

func (m *Manager) runProvider(ctx context.Context, name string, prompts []string, opts []CallOption) *ProviderReport {
	entry, ok := m.registry.Lookup(name)
	if !ok {
		return &ProviderReport{Error: fmt.Sprintf("unknown provider: %q", name)}
	}
	if os.Getenv(entry.CredentialEnvVar) == "" {
		return &ProviderReport{Error: fmt.Sprintf("missing credential: %s is not set", entry.CredentialEnvVar)}
	}
	adapter, err := m.adapter(name)
	if err != nil {
		m.logger.Error("provider construction failed", "provider", name, "error", err)
		return &ProviderReport{Error: err.Error()}
	}

	call := m.buildCall(name, opts)
	report := &ProviderReport{
		Model: call.config.String("model", ""),
	}
	var totalTime float64
	var totalChars int
	for _, prompt := range prompts {
		start := time.Now()
		result := adapter.Generate(ctx, call.systemPrompt, prompt, call.config)
		elapsed := time.Since(start).Seconds()

		test := &TestResult{
			Prompt:   prompt,
			Response: result.Text,
			Time:     elapsed,
			Success:  result.Successful(),
		}
		report.Tests = append(report.Tests, test)
		totalTime += elapsed
		totalChars += len(result.Text)
		if !test.Success {
			m.logger.Warn("comparison prompt failed", "provider", name, "error", result.Err)
		}
	}
	if n := len(report.Tests); n > 0 {
		report.AverageTime = totalTime / float64(n)
		report.AverageCharacters = totalChars / n
	}
	return report
}

// SaveBenchmark writes a comparison to path as pretty-printed JSON.
func (m *Manager) SaveBenchmark(comparison *Comparison, path string) error {
	data, err := json.MarshalIndent(comparison, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling benchmark results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing benchmark results: %w", err)
	}
	m.logger.Info("saved benchmark results", "path", path)
	return nil
}

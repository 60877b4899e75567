// Command chat is an interactive chat loop against the selected provider.
// Type "switch:<provider>" to change providers mid-session and "exit" to
// quit. Responses are streamed with elapsed time reported per turn.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/deepnoodle-ai/switchboard/config"
	"github.com/deepnoodle-ai/switchboard/log"
	"github.com/deepnoodle-ai/switchboard/manager"
	_ "github.com/deepnoodle-ai/switchboard/providers/all"
)

var (
	boldStyle  = color.New(color.Bold)
	errorStyle = color.New(color.FgRed)
	faintStyle = color.New(color.Faint)
)

const systemPrompt = `You are a friendly and helpful AI assistant.
You provide concise, accurate, and helpful responses to user questions.`

func main() {
	var providerName, configPath, logLevel string
	flag.StringVar(&providerName, "provider", "", "provider to use (default: "+config.DefaultProvider+")")
	flag.StringVar(&configPath, "config", "", "YAML config overrides file")
	flag.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	godotenv.Load()

	logger := log.New(log.LevelFromString(logLevel))
	opts := []manager.Option{manager.WithLogger(logger)}
	if configPath != "" {
		file, err := config.LoadFile(configPath)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, manager.WithConfigFile(file))
	}
	if providerName != "" {
		opts = append(opts, manager.WithDefaultProvider(providerName))
	}
	m, err := manager.New(opts...)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	boldStyle.Printf("Chat with %s\n", m.CurrentProvider())
	fmt.Printf("Model: %s\n", m.ModelConfig().String("model", "unknown"))
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Type 'exit' to quit, 'switch:<provider>' to change providers")
	fmt.Println(strings.Repeat("=", 50))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		boldStyle.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "exit", "quit", "bye":
			fmt.Println("\nGoodbye!")
			return
		}
		if name, ok := strings.CutPrefix(input, "switch:"); ok {
			name = strings.TrimSpace(name)
			if err := m.SwitchProvider(name); err != nil {
				errorStyle.Printf("Error switching provider: %s\n", err)
				continue
			}
			fmt.Printf("Switched to %s\n", name)
			fmt.Printf("Model: %s\n", m.ModelConfig().String("model", "unknown"))
			continue
		}

		boldStyle.Print("\nAI: ")
		start := time.Now()
		stream := m.Stream(ctx, input, manager.WithSystemPrompt(systemPrompt))
		var response strings.Builder
		for stream.Next() {
			fmt.Print(stream.Chunk())
			response.WriteString(stream.Chunk())
		}
		stream.Close()
		faintStyle.Printf("\n[Response time: %.2fs, %d chars]\n",
			time.Since(start).Seconds(), response.Len())
	}
}

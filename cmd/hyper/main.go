package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/vexxhost/hyper-platform/internal/cli"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	logLevelStr := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	logLevel := log.DebugLevel // Default to debug
	switch logLevelStr {
	case "INFO":
		logLevel = log.InfoLevel
	case "WARN":
		logLevel = log.WarnLevel
	case "ERROR":
		logLevel = log.ErrorLevel
	}

	log.SetLevel(logLevel)
	log.SetReportTimestamp(true)
	log.SetReportCaller(true)

	rootCmd := cli.NewRootCommand()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

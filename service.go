package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"

	"github.com/BeCuong18/PT-YT/analyze"
	"github.com/BeCuong18/PT-YT/fetch"
	"github.com/BeCuong18/PT-YT/handler"
	"github.com/BeCuong18/PT-YT/storage"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr))

	postgres, err := storage.NewPostgres(storage.PostgresInfo{
		Host:     getParam("POSTGRES_HOST", "localhost"),
		Port:     getParam("POSTGRES_PORT", "5432"),
		User:     getParam("POSTGRES_USER", "tubethumb"),
		Password: getParam("POSTGRES_PASSWORD", "tubethumb"),
		Database: getParam("POSTGRES_DB", "tubethumb"),
	})
	if err != nil {
		logger.Error("unable to connect to postgres", err)
		os.Exit(1)
	}
	settingRepo := storage.NewPostgresSettingRepository(postgres)
	reportRepo := storage.NewPostgresReportRepository(postgres)

	if apiKey := getParam("YOUTUBE_API_KEY", ""); apiKey != "" {
		if err := settingRepo.SetSetting(storage.SettingAPIKey, apiKey); err != nil {
			logger.Error("unable to store youtube api key", err)
			os.Exit(1)
		}
	}

	openAIClient := openai.NewClient(getParam("OPENAI_API_KEY", ""))
	analyzer := analyze.NewAnalyzer(openAIClient, getParam("OPENAI_MODEL", openai.GPT4))

	fetcher := fetch.NewClient(logger)

	port, err := strconv.Atoi(getParam("API_PORT", "8080"))
	if err != nil {
		logger.Error("invalid port", err)
		os.Exit(1)
	}
	server := handler.NewServer(fetcher, analyzer, settingRepo, reportRepo, logger)
	go http.ListenAndServe(fmt.Sprintf(":%d", port), server)
	logger.Info("http server started", slog.Int("port", port))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	<-done

	logger.Info("service stopped")
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/darkobits/frontlawn-website/internal/client/api"
	"github.com/darkobits/frontlawn-website/internal/client/cache"
	"github.com/darkobits/frontlawn-website/internal/client/cli"
	"github.com/darkobits/frontlawn-website/internal/client/identity"
	"github.com/darkobits/frontlawn-website/internal/client/iocli"
	"github.com/darkobits/frontlawn-website/internal/client/preload"
	"github.com/darkobits/frontlawn-website/internal/client/session"
	"github.com/darkobits/frontlawn-website/internal/client/storage/boltdb"
	"github.com/darkobits/frontlawn-website/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Конфигурация из окружения - значения по умолчанию для флагов
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	sourceURL := flag.String("source", cfg.SourceURL, "Photo source URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local cache database")
	ttl := flag.Duration("ttl", cfg.CacheTTL, "Cache time-to-live")
	indexOverride := flag.String("index", "", "Force rotation index (development override)")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст и логгер
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Собираем сервисы клиента
	apiClient := api.NewClient(*sourceURL)
	cacheService := cache.NewService(apiClient, boltStorage, *ttl, logger)
	identityService := identity.NewService(boltStorage, logger)
	preloader := preload.New(&http.Client{Timeout: 30 * time.Second}, logger)
	sess := session.New(cacheService, identityService, preloader, logger)

	c := cli.New(cli.Deps{
		Session:           sess,
		CacheService:      cacheService,
		Preloader:         preloader,
		CollectionStorage: boltStorage,
		IdentityStorage:   boltStorage,
		KeyLister:         boltStorage,
		TTL:               *ttl,
		IO:                iocli.NewStdio(),
	})

	// Выполняем команду
	switch command {
	case "today":
		override, err := parseIndexOverride(*indexOverride)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := c.RunToday(ctx, override); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "peek":
		if err := c.RunPeek(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "refresh":
		if err := c.RunRefresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "status":
		if err := c.RunStatus(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}
}

// parseIndexOverride разбирает значение флага --index; пустая строка - нет подмены
func parseIndexOverride(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}

	index, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --index value %q: must be an integer", value)
	}

	return &index, nil
}

func printVersion() {
	fmt.Printf("Frontlawn Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

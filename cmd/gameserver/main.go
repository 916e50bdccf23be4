// Package main provides the game server binary: the HTTP API over the
// game state core, backed by in-memory or PostgreSQL persistence.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/dmolchanov/magequest/internal/config"
	"github.com/dmolchanov/magequest/internal/game/item"
	"github.com/dmolchanov/magequest/internal/game/loot"
	"github.com/dmolchanov/magequest/internal/game/quest"
	"github.com/dmolchanov/magequest/internal/game/ruleset"
	"github.com/dmolchanov/magequest/internal/game/store"
	"github.com/dmolchanov/magequest/internal/observability"
	"github.com/dmolchanov/magequest/internal/server"
	"github.com/dmolchanov/magequest/internal/storage"
	"github.com/dmolchanov/magequest/internal/storage/memory"
	"github.com/dmolchanov/magequest/internal/storage/postgres"
	"github.com/dmolchanov/magequest/internal/web"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting game server",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("persistence", cfg.Persistence.Mode),
	)

	content := loadContent(cfg.Content.Dir, logger)

	// Wire the persistence backend.
	var (
		backend storage.Stores
		pool    *postgres.Pool
	)
	switch cfg.Persistence.Mode {
	case "postgres":
		dbStart := time.Now()
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		backend = storage.Stores{
			Saves:       postgres.NewSaveRepository(pool.DB()),
			Leaderboard: postgres.NewLeaderboardRepository(pool.DB()),
			Daily:       postgres.NewDailyRepository(pool.DB()),
			Questions:   postgres.NewQuestionRepository(pool.DB()),
		}
	default:
		backend = memory.New().Stores()
	}

	game := store.New(logger, backend, cfg.Persistence.Slot,
		store.WithContent(content))
	api := web.NewServer(game, logger)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lifecycle := server.NewLifecycle(logger)

	lifecycle.Add("http", &server.FuncService{
		StartFn: func() error {
			logger.Info("http server listening", zap.String("addr", httpServer.Addr))
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("serving http: %w", err)
			}
			return nil
		},
		StopFn: func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Warn("http shutdown", zap.Error(err))
			}
		},
	})

	if pool != nil {
		p := pool
		lifecycle.Add("postgres", &server.FuncService{
			StartFn: func() error {
				for {
					time.Sleep(30 * time.Second)
					if err := p.Health(ctx, 5*time.Second); err != nil {
						logger.Warn("database health check failed", zap.Error(err))
					}
				}
			},
			StopFn: func() {
				p.Close()
			},
		})
	}

	logger.Info("game server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("addr", cfg.Server.Addr()),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// loadContent reads the content catalogs from dir, falling back to the
// built-in set when dir is empty or absent.
func loadContent(dir string, logger *zap.Logger) store.Content {
	content := store.DefaultContent()
	if dir == "" {
		return content
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("content dir not found, using built-in content",
			zap.String("dir", dir))
		return content
	}

	contentStart := time.Now()
	if sub := subdir(dir, "items"); sub != "" {
		reg, err := item.LoadDefs(sub)
		if err != nil {
			logger.Fatal("loading item definitions", zap.Error(err))
		}
		content.Items = reg
	}
	if sub := subdir(dir, "classes"); sub != "" {
		classes, err := ruleset.LoadClasses(sub)
		if err != nil {
			logger.Fatal("loading class definitions", zap.Error(err))
		}
		content.Classes = classes
	}
	if sub := subdir(dir, "skills"); sub != "" {
		skills, err := ruleset.LoadSkills(sub)
		if err != nil {
			logger.Fatal("loading skill definitions", zap.Error(err))
		}
		content.Skills = skills
	}
	if fileExists(dir, "quests.yaml") {
		quests, err := quest.LoadQuests(dir)
		if err != nil {
			logger.Fatal("loading quest definitions", zap.Error(err))
		}
		content.Quests = quests
	}
	if fileExists(dir, "loot.yaml") {
		table, err := loot.LoadTable(dir, content.Items)
		if err != nil {
			logger.Fatal("loading loot table", zap.Error(err))
		}
		content.Drops = table
	}
	if err := content.Catalogue.Validate(content.Items); err != nil {
		logger.Fatal("validating shop catalogue", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.String("dir", dir),
		zap.Duration("elapsed", time.Since(contentStart)),
	)
	return content
}

// subdir returns dir/name when it exists as a directory, else "".
func subdir(dir, name string) string {
	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return ""
}

func fileExists(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}

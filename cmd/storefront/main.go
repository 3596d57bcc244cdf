package main

import (
	"fmt"
	"os"

	"github.com/bookstore/storefront/internal/catalog"
	"github.com/bookstore/storefront/internal/config"
	"github.com/bookstore/storefront/internal/storage"
	"github.com/bookstore/storefront/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var storageDriver string

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "BooksByNIK terminal bookshop",
	Long: `storefront is a terminal bookshop: log in, browse the catalog, keep a
cart and check out. State is kept in the configured storage backend.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorefront(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageDriver, "storage", "", "storage driver (sql, redis, memory), overrides STORAGE_DRIVER")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is what every command needs: configuration, a file logger, the storage
// backend and the catalog
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	store   storage.Backend
	catalog *catalog.Catalog
}

func setup() (*env, error) {
	cfg := config.Load()
	if storageDriver != "" {
		cfg.StorageDriver = storageDriver
	}

	// The terminal belongs to the UI, so logs go to a file
	log := logger.NewLogger(cfg.ServiceName, cfg.LogLevel, cfg.LogFile)

	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			log.Sync()
			return nil, err
		}
		cat = loaded
		log.Info("Loaded catalog", zap.String("file", cfg.CatalogFile), zap.Int("books", cat.Len()))
	}

	store, err := storage.Open(cfg, log)
	if err != nil {
		log.Error("Failed to open storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
		log.Sync()
		return nil, err
	}

	return &env{cfg: cfg, log: log, store: store, catalog: cat}, nil
}

func (e *env) close() {
	if err := e.store.Close(); err != nil {
		e.log.Error("Failed to close storage", zap.Error(err))
	}
	e.log.Sync()
}

package main

import (
	"context" // Command context
	"fmt"     // Output formatting
	"os"      // Exit codes
	"sort"    // Stable table order

	"fitness_tracker/internal/config"     // Custom import path (Config)
	"fitness_tracker/internal/db"         // Custom import path (Database)
	"fitness_tracker/internal/logging"    // Logger setup
	"fitness_tracker/internal/repository" // Query layer
	"fitness_tracker/internal/service"    // Catalog cache reset
	"fitness_tracker/internal/utils"      // Redis cache

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
	"github.com/spf13/cobra"       // CLI framework
	"gorm.io/gorm"                 // GORM ORM library
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the fitness tracker schema and seed the catalogs",
	Long: `Migrates the schema for every table, then seeds the exercise, yoga
and meal catalogs into any of those tables that are still empty.

Connection settings come from .env, CONFIG_FILE and the environment,
the same way the server reads them.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, gdb, err := open()
		if err != nil {
			return err
		}
		if err := db.Migrate(cmd.Context(), gdb); err != nil {
			return err
		}
		return seed(cmd, cfg, gdb)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed empty catalog tables without migrating",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, gdb, err := open()
		if err != nil {
			return err
		}
		return seed(cmd, cfg, gdb)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the row count of every table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, gdb, err := open()
		if err != nil {
			return err
		}
		counts, err := db.TableCounts(cmd.Context(), gdb)
		if err != nil {
			return err
		}
		tables := make([]string, 0, len(counts))
		for table := range counts {
			tables = append(tables, table)
		}
		sort.Strings(tables)
		for _, table := range tables {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %d\n", table, counts[table])
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file (overrides CONFIG_FILE)")
	rootCmd.AddCommand(seedCmd, statusCmd)
}

func open() (*config.Config, *gorm.DB, error) {
	if configFile != "" {
		if err := os.Setenv("CONFIG_FILE", configFile); err != nil {
			return nil, nil, err
		}
	}
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		return nil, nil, err
	}
	logging.Setup(cfg.Log)
	gdb, err := db.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gdb, nil
}

func seed(cmd *cobra.Command, cfg *config.Config, gdb *gorm.DB) error {
	report, err := db.Seed(cmd.Context(), gdb)
	if err != nil {
		return err
	}
	// A running server sharing this Redis must not keep serving the old catalogs
	if report.Inserted() > 0 && cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,     // Redis server address
			Password: cfg.Redis.Password, // Redis password
			DB:       cfg.Redis.DB,       // Redis database number
		})
		defer rdb.Close()
		if err := resetCatalogCache(cmd.Context(), rdb, gdb); err != nil {
			return fmt.Errorf("reset catalog cache: %w", err)
		}
	}
	logrus.WithFields(logrus.Fields{
		"exercises":  report.Exercises,
		"yoga_poses": report.YogaPoses,
		"meals":      report.Meals,
	}).Info("Seeding completed")
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d catalog rows\n", report.Inserted())
	return nil
}

// resetCatalogCache drops the catalogs the server caches in rdb
func resetCatalogCache(ctx context.Context, rdb *redis.Client, gdb *gorm.DB) error {
	svc := service.NewFitnessService(
		repository.NewStore(gdb),
		service.WithCache(utils.NewCache(rdb, service.CachePrefix), 0),
	)
	return svc.ResetCatalogCache(ctx)
}

// Main entry point for migration
func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

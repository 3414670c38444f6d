// Command store is the application entry point:
//
//	store serve              run the HTTP server
//	store migrate            apply pending migrations
//	store migrate:rollback   roll back the last batch
//	store migrate:status     show migration state
//	store seed               run database seeders
//	store route:list         print the route table
//	store queue:work         run queue workers without the HTTP server
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	_ "github.com/sengaryogesh394-ai/digiaddaworld/database/migrations"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/jobs"
	"github.com/sengaryogesh394-ai/digiaddaworld/config"
	"github.com/sengaryogesh394-ai/digiaddaworld/database/seeders"
	"github.com/sengaryogesh394-ai/digiaddaworld/internal/server"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/cache"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/migration"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/queue"
)

func main() {
	root := &cobra.Command{
		Use:   "store",
		Short: "digiaddaworld storefront and back office",
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		rollbackCmd(),
		statusCmd(),
		seedCmd(),
		routeListCmd(),
		queueWorkCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootDB loads configuration and connects the database for the
// non-server commands.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Start()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}
			return migration.New(database.DB).Run()
		},
	}
}

func rollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back the most recent migration batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}
			return migration.New(database.DB).Rollback()
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show which migrations have run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}
			return migration.New(database.DB).Status()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Run database seeders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}
			return seeders.RunAll(database.DB)
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print the registered route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			routes, err := server.RouteTable()
			if err != nil {
				return err
			}
			fmt.Printf("%-7s  %-45s  %s\n", "METHOD", "PATH", "NAME")
			for _, rt := range routes {
				fmt.Printf("%-7s  %-45s  %s\n", rt.Method, rt.Path, rt.Name)
			}
			return nil
		},
	}
}

func queueWorkCmd() *cobra.Command {
	workers := 4
	cmd := &cobra.Command{
		Use:   "queue:work",
		Short: "Run queue workers without the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootDB(); err != nil {
				return err
			}
			if err := cache.Connect(); err != nil {
				logger.Warn("queue:work: redis unavailable, using memory driver", "error", err)
			} else {
				queue.SetDriver(queue.NewRedisDriver(cache.RDB))
			}

			jobs.Register()
			queue.UseDB(database.DB)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			queue.StartWorkers(ctx, workers)
			fmt.Printf("Processing jobs with %d workers. Ctrl+C to stop.\n", workers)
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of concurrent workers")
	return cmd
}

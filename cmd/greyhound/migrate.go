package main

import (
	"github.com/spf13/cobra"

	"github.com/greyhound/greyhound/db/migrations"
	"github.com/greyhound/greyhound/pkg/config"
	"github.com/greyhound/greyhound/pkg/logger"
	"github.com/greyhound/greyhound/pkg/pg"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply PostgreSQL schema migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{pg.MigrateUp, pg.MigrateDown, pg.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := pg.MigrateUp
			if len(args) == 1 {
				command = args[0]
			}

			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			var pgCfg pg.Config
			if err := config.Load(&pgCfg); err != nil {
				return err
			}
			log := newLogger(cfg).With(logger.Component("migrate"))

			ctx := cmd.Context()
			pool, err := pg.Connect(ctx, pgCfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			return pg.Migrate(ctx, pool, migrations.FS, ".", command, pgCfg, log)
		},
	}
}

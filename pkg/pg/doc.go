// Package pg connects to PostgreSQL through a pgx v5 pool and applies goose
// migrations.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//
//	err = pg.Migrate(ctx, pool, migrations.FS, ".", pg.MigrateUp, cfg, log)
//
// Repositories depend on the Querier interface rather than the pool so they
// can be exercised without a database. Error helpers such as IsNotFoundError
// and IsDuplicateKeyError classify driver errors.
package pg

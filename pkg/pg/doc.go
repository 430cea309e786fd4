// Package pg provides a thin PostgreSQL bootstrap layer on top of the
// pgx/v5 driver: connection pooling with retry, embedded goose
// migrations, a health check helper, and error classification helpers.
//
// # Usage
//
//	cfg, err := config.Load[pg.Config]()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrationsFS, "migrations", cfg, slog.Default()); err != nil {
//		log.Fatal(err)
//	}
//
// Error helpers such as [IsDuplicateKeyError] and [IsNotFoundError]
// unwrap pgx and pgconn errors so that business logic can classify
// failures without importing driver packages.
package pg

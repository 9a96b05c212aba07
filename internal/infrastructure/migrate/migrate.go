package migrate

import (
	"context"
	"embed"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const retryInterval = 2 * time.Second

// Up applies pending schema migrations, retrying a bounded number of times
// so the service survives a database that is still coming up.
func Up(ctx context.Context, logger *zap.Logger, dsn string, attempts int) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	backoff := retry.WithMaxRetries(uint64(attempts), retry.NewConstant(retryInterval))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		db, err := goose.OpenDBWithDriver("pgx", dsn)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer db.Close()

		if err = goose.UpContext(ctx, db, "migrations"); err != nil {
			logger.Warn("migration attempt failed", zap.Error(err))
			return retry.RetryableError(err)
		}

		return nil
	})
}

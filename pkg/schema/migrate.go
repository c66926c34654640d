package schema

import (
	"context"
	"database/sql"
	"io/fs"

	"github.com/go-faster/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Schema is one module's embedded migration set. Each module keeps its own
// goose version table so modules can evolve independently.
type Schema struct {
	FS    fs.FS
	Dir   string
	Table string
}

// Migrate applies every registered module schema in order. goose drives a
// database/sql connection, so the pgx stdlib driver is used here while the
// rest of the application talks native pgx.
func Migrate(ctx context.Context, dsn string, schemas ...Schema) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open migration connection")
	}
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	for _, s := range schemas {
		goose.SetBaseFS(s.FS)
		goose.SetTableName(s.Table)
		if err := goose.UpContext(ctx, db, s.Dir); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", s.Table)
		}
	}
	return nil
}

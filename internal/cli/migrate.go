package cli

import (
	"fmt"
	"io/fs"

	"github.com/manasgurde21/DailyGrow/internal/migration"
	"github.com/manasgurde21/DailyGrow/internal/storage/sqlite"
	"github.com/manasgurde21/DailyGrow/migrations"
)

type MigrateCmd struct {
	Status bool `help:"Show the current schema version without applying anything."`
}

func (c *MigrateCmd) Run(ctx *Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("migrations only apply to SQLite storage")
	}

	if err := store.Load(); err != nil {
		return err
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access migrations: %w", err)
	}
	runner := migration.NewRunner(store.GetDB(), subFS)

	if c.Status {
		version, err := runner.CurrentVersion()
		if err != nil {
			return err
		}
		fmt.Printf("Schema version: %d\n", version)
		return nil
	}

	applied, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return err
	}

	if applied == 0 {
		fmt.Println("Database schema is up to date.")
	} else {
		fmt.Printf("Applied %d migration(s).\n", applied)
	}
	return nil
}

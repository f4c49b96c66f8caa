package persistence

import (
	"context"

	"tfhive/internal/core"
)

// Migration runners are one-shot services: the migrate subcommands provide
// exactly one of them and the process exits when its Run returns.

type MigrationUpRunner struct {
	Migrator core.Migrator
}

func (r *MigrationUpRunner) Run(ctx context.Context) error {
	return r.Migrator.Up(ctx)
}

type MigrationDownRunner struct {
	Migrator core.Migrator
}

func (r *MigrationDownRunner) Run(ctx context.Context) error {
	return r.Migrator.Down(ctx)
}

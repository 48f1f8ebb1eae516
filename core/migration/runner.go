// ABOUTME: Migration runner upgrades on-disk schema versions sequentially
// ABOUTME: Each step is applied in order and the version is persisted after it

package migration

import (
	"context"
	"time"

	"headlines-app-api/core/envelope"
	coreerrors "headlines-app-api/core/errors"
	"headlines-app-api/core/interfaces"
)

// SchemaVersionKey is where the runner persists its own state
const SchemaVersionKey = "migration.schemaVersion"

// Step upgrades stored data from one schema version to the next.
// Steps must tolerate being re-run: a crash between applying a step and
// persisting the new version replays the step on restart.
type Step func(ctx context.Context, storage interfaces.KeyValueStore) error

// Runner applies pending migration steps at startup
type Runner struct {
	storage interfaces.KeyValueStore
	logger  interfaces.Logger
	steps   []Step
	now     func() time.Time
}

// NewRunner creates a runner over the given steps.
// steps[i] migrates schema version i to i+1; the target version is len(steps).
func NewRunner(deps interfaces.Dependencies, steps []Step) *Runner {
	return &Runner{
		storage: deps.Storage,
		logger:  deps.Logger,
		steps:   steps,
		now:     time.Now,
	}
}

// TargetVersion returns the schema version the runner migrates to
func (r *Runner) TargetVersion() int {
	return len(r.steps)
}

// Run reads the stored schema version and applies every pending step in
// order, persisting the version after each successful step. A failing step
// aborts the chain with a MigrationError and leaves the version and the
// pre-migration data untouched.
func (r *Runner) Run(ctx context.Context) (int, error) {
	stored, err := r.storedVersion(ctx)
	if err != nil {
		return 0, err
	}

	target := r.TargetVersion()
	if stored > target {
		// Data written by newer code; do not attempt a downgrade
		r.logger.Warn("Stored schema version is ahead of this build", map[string]interface{}{
			"stored": stored,
			"target": target,
		})
		return stored, nil
	}

	for stored < target {
		if err := r.steps[stored](ctx, r.storage); err != nil {
			return stored, &coreerrors.MigrationError{
				FromVersion: stored,
				ToVersion:   stored + 1,
				Err:         err,
			}
		}

		stored++
		if err := r.persistVersion(ctx, stored); err != nil {
			return stored - 1, &coreerrors.MigrationError{
				FromVersion: stored - 1,
				ToVersion:   stored,
				Err:         err,
			}
		}

		r.logger.Info("Applied schema migration", map[string]interface{}{
			"version": stored,
		})
	}

	return stored, nil
}

// storedVersion reads the persisted schema version; absence reads as 0
func (r *Runner) storedVersion(ctx context.Context) (int, error) {
	raw, err := r.storage.GetString(ctx, SchemaVersionKey)
	if err == interfaces.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, &coreerrors.StorageReadError{Key: SchemaVersionKey, Err: err}
	}

	env, err := envelope.Open(SchemaVersionKey, raw)
	if err != nil {
		// A corrupt version marker is unrecoverable by guessing; treat
		// as version 0 so idempotent steps can rebuild the state
		r.logger.Warn("Corrupt schema version marker, assuming 0", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, nil
	}

	var version int
	if err := env.Decode(SchemaVersionKey, &version); err != nil {
		r.logger.Warn("Unreadable schema version payload, assuming 0", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, nil
	}

	return version, nil
}

// persistVersion writes the schema version marker
func (r *Runner) persistVersion(ctx context.Context, version int) error {
	raw, err := envelope.Seal(version, version, r.now())
	if err != nil {
		return err
	}

	if err := r.storage.SetString(ctx, SchemaVersionKey, raw); err != nil {
		return &coreerrors.StorageWriteError{Key: SchemaVersionKey, Err: err}
	}

	return nil
}

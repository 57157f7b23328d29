package shared

import "context"

// OptimisticUpdate is a compensating-action helper for mutations that are
// applied locally before the remote side confirms them. Snapshot captures the
// state needed to undo the mutation, Apply performs it, Commit sends it to the
// remote authority, and Restore puts the snapshot back when Commit fails.
//
// The local mutation always runs synchronously before Commit starts, so callers
// observe the new state before confirmation.
type OptimisticUpdate[S any] struct {
	Snapshot func() S
	Apply    func()
	Commit   func(ctx context.Context) error
	Restore  func(snapshot S)
}

// Run executes the update: snapshot, apply, then commit. When commit returns
// an error the snapshot is restored exactly and the error is returned to the
// caller unchanged.
func (u OptimisticUpdate[S]) Run(ctx context.Context) error {
	snapshot := u.Snapshot()
	u.Apply()
	if err := u.Commit(ctx); err != nil {
		u.Restore(snapshot)
		return err
	}
	return nil
}

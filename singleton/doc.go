// Package singleton implements a lazily created, process-wide Database handle.
//
// Instance constructs the Database on first use and returns the same pointer
// on every later call. Construction is guarded by sync.Once, so concurrent
// first calls still create exactly one Database.
//
// The guard is exposed as Lazy[T], a small generic cell around a constructor,
// for callers that want the same "create once, share forever" behavior for
// their own types.
//
//	db := singleton.Instance()
//	db.Query("Gestioname Esta")
package singleton

package store

import "errors"

// ErrStore is returned when a fragment-store operation — opening the
// database, persisting a fragment, or rehydrating one — fails. Every
// failure path in this package wraps it, so callers can errors.Is against
// "this was a StoreError" regardless of which operation failed.
var ErrStore = errors.New("store: operation failed")

package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Loaders and other infrastructure
// return these (optionally wrapped) so callers can translate them into
// domain errors.
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var ErrNotFound = errors.New("not found")

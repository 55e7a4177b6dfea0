package index

import "errors"

// ErrNoIndex indicates no index cache exists at the given path.
var ErrNoIndex = errors.New("search index not found")

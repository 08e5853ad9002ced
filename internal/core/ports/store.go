package ports

import "go.trai.ch/gowheel/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving per-target
// build records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info for a given platform key.
	// Returns nil, nil if not found.
	Get(root, platformKey string) (*domain.BuildInfo, error)

	// Put stores the build info.
	Put(root string, info domain.BuildInfo) error
}

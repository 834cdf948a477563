package repository

import "publishing-graph/internal/domain/entity"

// MagazineRegistry records every magazine ever constructed, in construction order.
// It is append-only: nothing is ever removed and Len never decreases.
type MagazineRegistry interface {
	Append(magazine *entity.Magazine)
	// Snapshot returns the registry contents in order. The slice is the caller's own copy.
	Snapshot() []*entity.Magazine
	// Contains reports whether magazine, compared by pointer, has been appended.
	Contains(magazine *entity.Magazine) bool
	Len() int
}

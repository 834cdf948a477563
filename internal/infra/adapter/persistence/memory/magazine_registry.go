package memory

import (
	"publishing-graph/internal/domain/entity"
	"publishing-graph/internal/repository"
)

// MagazineRegistry implements repository.MagazineRegistry in process memory.
type MagazineRegistry struct {
	log appendLog[entity.Magazine]
}

// NewMagazineRegistry returns an empty magazine registry.
func NewMagazineRegistry() *MagazineRegistry {
	return &MagazineRegistry{}
}

var _ repository.MagazineRegistry = (*MagazineRegistry)(nil)

// Append records magazine at the end of the registry. A nil magazine is ignored.
func (r *MagazineRegistry) Append(magazine *entity.Magazine) { r.log.append(magazine) }

// Snapshot returns a copy of the registry in construction order.
func (r *MagazineRegistry) Snapshot() []*entity.Magazine { return r.log.snapshot() }

// Contains reports whether magazine has been appended.
func (r *MagazineRegistry) Contains(magazine *entity.Magazine) bool { return r.log.contains(magazine) }

// Len returns the number of registered magazines.
func (r *MagazineRegistry) Len() int { return r.log.len() }

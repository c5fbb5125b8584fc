package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// Module mounts its routes on the public and token-protected groups.
type Module interface {
	Mount(public, authed *gin.RouterGroup)
}

// Modules may implement prioritizer to control mount order (lower first);
// the default is 100.
type prioritizer interface{ Priority() int }

// MountAll mounts mods in priority order, keeping the given order on ties.
func MountAll(public, authed *gin.RouterGroup, mods ...Module) {
	sorted := append([]Module(nil), mods...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priorityOf(sorted[i]) < priorityOf(sorted[j])
	})
	for _, m := range sorted {
		m.Mount(public, authed)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}

package stack

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// stashLabel builds a unique stash message of the form
// "anist-<kind>-<nonce>". The nonce makes labels collision-free even when
// several snapshots of the same kind exist in the stash pool, and the
// prefix makes anist's entries recognizable in git stash list.
func stashLabel(kind string) string {
	nonce := strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	return fmt.Sprintf("anist-%s-%s", kind, nonce)
}

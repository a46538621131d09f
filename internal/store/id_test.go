// internal/store/id_test.go
package store

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositeIDShape(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{13,}-[a-z0-9]{9}$`)
	assert.Regexp(t, pattern, compositeID("ORD"))
}

func TestCompositeIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := compositeID("review")
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

// internal/store/id.go
package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopora/storefront-backend/internal/utils"
)

// compositeID builds a time+random identifier like "ORD-1718000000000-x7k2mp9ab".
func compositeID(prefix string) string {
	suffix, err := utils.GenerateRandomString(9)
	if err != nil {
		suffix = strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), strings.ToLower(suffix))
}

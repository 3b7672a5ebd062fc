package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewQuoteID generates the human-readable quote identifier customers quote back
// over the phone, e.g. EV-261018-4F7A2C.
func NewQuoteID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return "EV-" + now.UTC().Format("060102") + "-" + suffix
}

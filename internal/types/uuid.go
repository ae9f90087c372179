package types

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_INVOICE   = "inv"
	UUID_PREFIX_LINE_ITEM = "line"
	UUID_PREFIX_PRODUCT   = "prod"
	UUID_PREFIX_CATEGORY  = "cat"
	UUID_PREFIX_SCHEME    = "sch"
)

// GenerateUUID returns a lowercase ULID.
func GenerateUUID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}

// GenerateUUIDWithPrefix returns a lowercase ULID with a readable entity prefix.
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

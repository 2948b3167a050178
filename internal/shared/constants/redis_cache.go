package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// Pattern: arena:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG = 24 * time.Hour // admin-managed settings
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour // event details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour // event listings
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_SHORT = 5 * time.Minute // seat maps
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "arena"
)

// ================== EVENTS MODULE ==================

const (
	CACHE_KEY_EVENTS_LIST  = CACHE_PREFIX + ":events:list"         // + :page:X:limit:Y
	CACHE_KEY_EVENT_DETAIL = CACHE_PREFIX + ":events:detail:uuid:" // + event-id
)

const (
	TTL_EVENT_LIST   = TTL_SEMI_STATIC_SHORT
	TTL_EVENT_DETAIL = TTL_SEMI_STATIC_MEDIUM
)

// ================== SEATS MODULE ==================

const (
	CACHE_KEY_SEAT_MAP = CACHE_PREFIX + ":seats:map" // + :event:X:date:Y
)

const (
	TTL_SEAT_MAP = TTL_DYNAMIC_SHORT
)

// ================== SETTINGS MODULE ==================

const (
	CACHE_KEY_SETTINGS_ALL = CACHE_PREFIX + ":settings:all"
)

const (
	TTL_SETTINGS = TTL_STATIC_LONG
)

// ================== RATE LIMIT ==================

const (
	CACHE_KEY_RATE_LIMIT = CACHE_PREFIX + ":ratelimit" // + :ip:type
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_SEAT_MAPS = CACHE_PREFIX + ":seats:map:event:" // + event-id + *
)

// ================== KEY BUILDERS ==================

func BuildEventListKey(page, limit int) string {
	return fmt.Sprintf("%s:page:%d:limit:%d", CACHE_KEY_EVENTS_LIST, page, limit)
}

func BuildEventDetailKey(eventID string) string {
	return CACHE_KEY_EVENT_DETAIL + eventID
}

func BuildSeatMapKey(eventID, date string) string {
	return fmt.Sprintf("%s:event:%s:date:%s", CACHE_KEY_SEAT_MAP, eventID, date)
}

func BuildSeatMapPattern(eventID string) string {
	return PATTERN_INVALIDATE_SEAT_MAPS + eventID + ":*"
}

func BuildRateLimitKey(ip, limitType string) string {
	return fmt.Sprintf("%s:%s:%s", CACHE_KEY_RATE_LIMIT, ip, limitType)
}

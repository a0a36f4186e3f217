package entity

const (
	// MaxPageLimit caps the number of rows a single page may return.
	MaxPageLimit = 100

	// DefaultPageLimit is used by listings that do not declare their own default.
	DefaultPageLimit = 100
)

// Page is a skip/limit window over an ordered listing.
type Page struct {
	Skip  int
	Limit int
}

// NewPage normalizes skip and limit. A non-positive limit falls back to defaultLimit
// and limits above MaxPageLimit are clamped.
func NewPage(skip, limit, defaultLimit int) Page {
	if skip < 0 {
		skip = 0
	}
	if defaultLimit <= 0 {
		defaultLimit = DefaultPageLimit
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return Page{Skip: skip, Limit: limit}
}

package cfg

// Section is one named record of a parsed configuration.
//
// Inheritances holds the names of the sections this one falls back to,
// in declaration order; the order is the value-resolution priority,
// highest first. Every name was verified to exist in the store at the
// moment it was parsed.
//
// Attributes holds free-form flag strings in declaration order; presence
// means true, duplicates are allowed.
//
// Values maps keys (unique per section) to their string payload. Array
// values are stored as a single comma-joined string and split only by
// GetArray at query time.
type Section struct {
	Inheritances []string
	Attributes   []string
	Values       map[string]string
}

func newSection() *Section {
	return &Section{Values: make(map[string]string)}
}

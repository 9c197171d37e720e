// Package localisation parses, aggregates and serialises the semicolon
// delimited localisation CSV files found under each base path.
package localisation

// Table maps localisation keys to display text. Keys are unique; merge
// precedence is decided by Merge.
type Table map[string]string

// Entry is one key/text record in output order.
type Entry struct {
	Key  string
	Text string
}

// Merge copies entries of other into t, keeping t's existing value when a
// key is already present. Folding tables in scan order through Merge
// implements first-occurrence-wins precedence.
func (t Table) Merge(other Table) {
	for k, v := range other {
		if _, ok := t[k]; !ok {
			t[k] = v
		}
	}
}

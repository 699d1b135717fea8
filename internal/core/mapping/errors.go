package mapping

import "fmt"

// ConfigError reports a mapping-table miss with no configured default, or a
// table that fails load-time validation. It is fatal: no output is written
// once one surfaces.
type ConfigError struct {
	Table string
	Key   string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("mapping table %q must define a default", e.Table)
	}
	return fmt.Sprintf("mapping table %q has no entry for key %q and no default", e.Table, e.Key)
}

package model

import "strings"

type TableMode int

const (
	TableModeAll TableMode = iota
	TableModeInclude
	TableModeExclude
)

// IncludedExcludedTables restricts which tables take part in a run.
// At most one of the two lists is non-empty.
type IncludedExcludedTables struct {
	included []string
	excluded []string
}

func NewIncludedExcludedTables(include, exclude []string) (IncludedExcludedTables, error) {
	include = compact(include)
	exclude = compact(exclude)
	if len(include) > 0 && len(exclude) > 0 {
		return IncludedExcludedTables{}, &ConfigError{Field: "tables", Err: ErrIncludeExclude}
	}
	return IncludedExcludedTables{included: include, excluded: exclude}, nil
}

func (self IncludedExcludedTables) Mode() TableMode {
	switch {
	case len(self.included) > 0:
		return TableModeInclude
	case len(self.excluded) > 0:
		return TableModeExclude
	default:
		return TableModeAll
	}
}

// Tables returns a copy of the list that applies to the current mode.
func (self IncludedExcludedTables) Tables() []string {
	switch self.Mode() {
	case TableModeInclude:
		return append([]string(nil), self.included...)
	case TableModeExclude:
		return append([]string(nil), self.excluded...)
	}
	return nil
}

func compact(list []string) []string {
	var out []string
	for _, v := range list {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

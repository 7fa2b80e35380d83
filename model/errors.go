package model

import (
	"errors"
	"fmt"
)

var ErrIncludeExclude = errors.New("cannot include and exclude tables at the same time")

// ConfigError reports an invalid run configuration. It is returned before any query runs.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (self *ConfigError) Error() string {
	if self.Err != nil {
		return fmt.Sprintf("invalid %s: %s", self.Field, self.Err)
	}
	return fmt.Sprintf("invalid %s: %s", self.Field, self.Reason)
}

func (self *ConfigError) Unwrap() error {
	return self.Err
}

package permission

import (
	"errors"
	"fmt"
)

// ErrUnknownPermission is matched by every ConfigurationError.
var ErrUnknownPermission = errors.New("permission: unknown token")

// ConfigurationError reports a token or group referenced by configuration
// that does not exist in the catalog.
type ConfigurationError struct {
	Source string
	Token  string
	Group  GroupName
}

func (e *ConfigurationError) Error() string {
	where := ""
	if e.Source != "" {
		where = " in " + e.Source
	}
	if e.Group != "" && e.Token == "" {
		return fmt.Sprintf("permission: unknown group %q%s", e.Group, where)
	}
	return fmt.Sprintf("permission: unknown token %q%s", e.Token, where)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrUnknownPermission
}

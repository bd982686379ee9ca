package leave

import "errors"

var (
	ErrUnknownGrantKind = errors.New("unknown leave grant kind")
)

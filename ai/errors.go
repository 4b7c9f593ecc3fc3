package ai

import "errors"

var (
	ErrNoTarget      = errors.New("ai: missing target")
	ErrNoNavigator   = errors.New("ai: missing navigator")
	ErrNoBody        = errors.New("ai: missing body")
	ErrInvalidConfig = errors.New("ai: invalid config")
)

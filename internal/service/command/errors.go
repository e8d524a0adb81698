package command

import "errors"

var (
	ErrUnknownRole    = errors.New("unknown model role")
	ErrUnknownExample = errors.New("unknown example")
	ErrUsage          = errors.New("invalid arguments")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrUnknownCommand = errors.New("unknown command")
)

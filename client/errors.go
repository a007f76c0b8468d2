package client

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTransport       = errors.New("transport failure")
	ErrDecode          = errors.New("decode failure")
)

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

func requiredParam(name string) error {
	return fmt.Errorf("%w: %s is a required parameter", ErrInvalidArgument, name)
}

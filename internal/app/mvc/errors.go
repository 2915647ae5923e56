package mvc

import "errors"

var (
	ErrContextNotInitialized = errors.New("request context not initialized")
	ErrActionNotFound        = errors.New("controller action not found")
	ErrDuplicateAction       = errors.New("controller action already registered")
)

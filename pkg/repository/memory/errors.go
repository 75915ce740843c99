package memory

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the in-memory repository
var (
	ErrNotFound      = goerr.New("not found")
	ErrAlreadyExists = goerr.New("already exists")
)

package service

import (
	"errors"

	"github.com/fitgenius/backend/internal/bmi"
	"github.com/fitgenius/backend/internal/store"
)

var (
	ErrInvalidInput  = bmi.ErrInvalidInput
	ErrMissingInput  = bmi.ErrMissingInput
	ErrNotFound      = store.ErrNotFound
	ErrInvalidRecord = store.ErrInvalidRecord

	// ErrExternalService wraps every failure of the text generator. Providers
	// absorb it and substitute fallback content.
	ErrExternalService = errors.New("external service failure")
)

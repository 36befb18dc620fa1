package services

import (
	"errors"
	"net/http"

	"github.com/yungbote/symbiosis-backend/internal/data/db"
	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
)

// storageError turns a repository failure into the API error the client sees.
// Constraint sentinels from db.Classify keep their driver error as the cause.
func storageError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apierr.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, db.ErrDuplicate):
		return apierr.Conflict(entity+" already exists", err)
	case errors.Is(err, db.ErrMissingReference):
		return apierr.InvalidReference(entity+" references a record that does not exist", err)
	case errors.Is(err, db.ErrCheckViolation):
		return &apierr.Error{
			Status:  http.StatusBadRequest,
			Code:    apierr.CodeValidation,
			Message: entity + " has a value outside its allowed range",
			Err:     err,
		}
	default:
		return apierr.Internal("failed to store "+entity, err)
	}
}

package adaptor

import (
	"errors"
	"net/http"

	"account-service/internal/usecase"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service sentinels to HTTP responses. Anything
// unrecognized is logged with full detail and reduced to a generic 500 so
// internal failure modes never reach the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrDuplicateEmail):
		log.Warn(operation+" failed - duplicate email", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation + " failed - invalid credentials")
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUserNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrNotImplemented):
		// Explicitly acknowledged as unimplemented, never silently accepted
		utils.ResponseJSON(w, http.StatusOK, false, "password reset is not implemented", nil, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

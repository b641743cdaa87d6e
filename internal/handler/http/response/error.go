package response

import (
	"errors"
	"net/http"

	"github.com/seclens/insight-backend-go/internal/domain/attendance"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, attendance.ErrUnknownDepartment):
		BadRequest(w, "Unknown department", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package handlers

import (
	"errors"
	"net/http"

	"cop_dashboard/logger"
	"cop_dashboard/models"
	"cop_dashboard/repository"
	"cop_dashboard/utils"
)

// errorCode maps a load or parse failure to its response code.
func errorCode(err error) int {
	var pe *paramError
	switch {
	case errors.As(err, &pe):
		return models.CodeInvalidParams
	case errors.Is(err, repository.ErrUnknownDataset):
		return models.CodeUnknownDataset
	case errors.Is(err, repository.ErrDatasetUnavailable):
		return models.CodeDatasetUnavailable
	case errors.Is(err, repository.ErrMissingColumn):
		return models.CodeMissingColumn
	default:
		return models.CodeServerError
	}
}

func logFailure(r *http.Request, code int, err error) {
	args := []any{"path", r.URL.Path, "code", code, "error", err}
	if utils.HTTPStatus(code) < http.StatusInternalServerError {
		logger.Warn("request rejected", args...)
		return
	}
	logger.Error("request failed", args...)
}

// writeAPIError writes the error envelope for err.
func writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)
	logFailure(r, code, err)

	data := map[string]interface{}{}
	var pe *paramError
	if errors.As(err, &pe) {
		data["param"] = pe.param
	}
	utils.WriteCustomErrorResponse(w, code, err.Error(), data)
}

package utils

import "cop_dashboard/models"

// HTTPStatus maps a response code to the HTTP status it is served with.
// Client errors (1xxx) are 400, server errors (2xxx) are 500.
func HTTPStatus(code int) int {
	switch {
	case code == models.CodeSuccess:
		return 200
	case code >= 1000 && code < 2000:
		return 400
	default:
		return 500
	}
}

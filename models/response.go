package models

// Response codes
const (
	CodeSuccess = 0

	// client errors (1000-1999)
	CodeInvalidParams  = 1000
	CodeMissingParams  = 1001
	CodeUnknownDataset = 1002

	// server errors (2000-2999)
	CodeServerError        = 2000
	CodeDatabaseError      = 2001
	CodeDatasetUnavailable = 2002
	CodeMissingColumn      = 2003
)

var CodeMessages = map[int]string{
	CodeSuccess:            "success",
	CodeInvalidParams:      "invalid parameter",
	CodeMissingParams:      "missing parameter",
	CodeUnknownDataset:     "unknown dataset",
	CodeServerError:        "internal server error",
	CodeDatabaseError:      "database error",
	CodeDatasetUnavailable: "dataset unavailable",
	CodeMissingColumn:      "dataset is missing a required column",
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse builds an error envelope with the code's default message.
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "unknown error"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse builds an error envelope with a custom message.
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

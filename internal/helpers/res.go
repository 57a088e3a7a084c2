package helpers

type ApiResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

// ValidationErrorResponse carries the field → message map produced by the
// form schema so clients can attach messages to individual inputs.
func ValidationErrorResponse(fields map[string]string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   "validation failed",
		Errors:  fields,
	}
}

package models

// ResponseModel is the envelope every API endpoint returns. It matches
// the upstream WordPress API's own shape, which the mobile clients
// already speak.
type ResponseModel struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
	Total   int         `json:"total,omitempty"`
}

// NewOKResponse wraps data in a successful envelope.
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{Success: true, Data: data}
}

// NewListResponse wraps a list payload and records its length.
func NewListResponse(data interface{}, total int) ResponseModel {
	return ResponseModel{Success: true, Data: data, Total: total}
}

// NewErrorResponse builds a failed envelope with a user-facing message.
func NewErrorResponse(message string) ResponseModel {
	return ResponseModel{Success: false, Data: nil, Error: message}
}

package models

// APIResponse 표준 API 응답 구조
type APIResponse struct {
	Status  string      `json:"status"` // error
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`   // 검증 오류 코드
	Fields  []string    `json:"fields,omitempty"` // 문제가 된 필드
}

// ErrorResponse 에러 응답 생성
func ErrorResponse(message string, err error) APIResponse {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	return APIResponse{
		Status:  "error",
		Message: message,
		Error:   errMsg,
	}
}

// ValidationErrorResponse 입력 검증 실패 응답 생성
func ValidationErrorResponse(message, code string, fields []string) APIResponse {
	return APIResponse{
		Status:  "error",
		Message: message,
		Error:   message,
		Code:    code,
		Fields:  fields,
	}
}

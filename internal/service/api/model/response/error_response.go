package response

// ErrorResponse 모든 에러 응답의 공통 본문입니다.
type ErrorResponse struct {
	// 에러 메시지
	Error string `json:"error" example:"lines는 0 이상의 정수여야 합니다"`
}

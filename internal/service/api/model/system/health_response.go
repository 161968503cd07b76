package system

import "time"

// HealthResponse 모니터링 서버 자체의 생존 여부 응답입니다.
type HealthResponse struct {
	// 항상 "healthy"
	Status string `json:"status" example:"healthy"`
	// 응답 생성 시각 (UTC)
	Timestamp time.Time `json:"timestamp" example:"2026-10-19T12:00:00Z"`
	// 서비스 이름
	Service string `json:"service" example:"monitoring"`
}

// PingResponse Ping 응답입니다.
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

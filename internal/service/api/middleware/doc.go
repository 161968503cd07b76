// Package middleware API 서버에서 사용하는 Echo 미들웨어를 제공합니다.
//
// 적용 순서는 api.NewHTTPServer에서 결정됩니다.
//
//	PanicRecovery → RequestID → Server 헤더 제거 → HTTPLogger → RateLimiting → BodyLimit → Timeout → CORS → Secure
package middleware

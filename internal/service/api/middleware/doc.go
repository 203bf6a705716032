// Package middleware 가격 조회 API 서버의 Echo 미들웨어를 제공합니다.
//
//   - PanicRecovery: 핸들러 패닉 복구 및 스택 로깅
//   - RequestID: UUID 기반 요청 ID 발급
//   - HTTPLogger: 요청/응답 구조화 로깅 (민감 쿼리 마스킹)
//   - RateLimit: IP별 토큰 버킷 요청 제한
//   - Logger: Echo 로거를 애플리케이션 로거로 연결하는 어댑터
//
// 사용 예시:
//
//	e := echo.New()
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.RequestID())
//	e.Use(middleware.HTTPLogger())
//	e.Use(middleware.RateLimit(20, 40))
package middleware

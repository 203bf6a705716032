package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 헬스체크 상태: 비정상
	HealthStatusUnhealthy = "unhealthy"

	// DependencyStorePrefix 판매처 저장소 의존성 ID 접두사 (예: store.atb)
	DependencyStorePrefix = "store."

	// MsgDepStatusHealthy 외부 의존성 상태: 정상
	MsgDepStatusHealthy = "정상 작동 중"

	// MsgDepStatusNoProbe 외부 의존성 상태: 상태 확인을 지원하지 않는 저장소
	MsgDepStatusNoProbe = "상태 확인을 지원하지 않는 저장소 (항상 정상으로 간주)"
)

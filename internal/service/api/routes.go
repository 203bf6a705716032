package api

import (
	"github.com/darkkaiser/grocery-price-server/internal/service/api/constants"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/handler/product"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: 서비스 상태 확인(/health) 및 버전 정보(/version)
//   - 상품 엔드포인트: 판매처별 목표 중량 가격, 판매처 간 비교, 가격 문자열 기준 정렬 (/products/*)
//   - API 문서: Swagger UI (/swagger/*)
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, productHandler *product.Handler) {
	registerSystemRoutes(e, systemHandler)
	registerProductRoutes(e, productHandler)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}

// 정적 경로(/products/atb 등)는 Echo 라우터에서 파라미터 경로보다 먼저 매칭된다.
func registerProductRoutes(e *echo.Echo, h *product.Handler) {
	g := e.Group("/products")
	g.GET("/atb", h.PricedATBHandler)
	g.GET("/silpo", h.PricedSilpoHandler)
	g.GET("/compare", h.CompareHandler)
	g.GET("/:"+constants.PathRetailer+"/sorted", h.SortedHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		// 딥 링크 활성화 (특정 API로 바로 이동 가능한 URL 지원)
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그 목록만 펼침 상태로 표시
		echoSwagger.DocExpansion("list"),
	))
}

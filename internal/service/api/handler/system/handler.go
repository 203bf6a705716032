// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 상품 조회와 무관한 시스템 수준의 API를 처리합니다.
package system

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/grocery-price-server/internal/pkg/version"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/constants"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/model/system"
	"github.com/darkkaiser/grocery-price-server/internal/store"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// pingTimeout 저장소 하나의 상태 확인에 허용하는 최대 시간
const pingTimeout = 2 * time.Second

// Stores 판매처 저장소 목록을 제공합니다. *store.Registry가 구현합니다.
type Stores interface {
	Names() []string
	Get(retailer string) (store.Store, bool)
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	stores Stores

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(stores Stores, buildInfo version.Info) *Handler {
	if stores == nil {
		panic(constants.PanicMsgStoreRegistryRequired)
	}

	return &Handler{
		stores: stores,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 판매처 저장소의 상태를 확인합니다.
// @Description 모니터링 시스템에서 사용됩니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - dependencies: 판매처 저장소별 상태 (store.atb, store.silpo)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	deps := make(map[string]system.DependencyStatus)
	for _, name := range h.stores.Names() {
		s, ok := h.stores.Get(name)
		if !ok {
			continue
		}
		deps[constants.DependencyStorePrefix+name] = probe(c.Request().Context(), s)
	}

	// 하나라도 unhealthy면 전체 상태를 unhealthy로 설정
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       uptime,
		Dependencies: deps,
	})
}

func probe(ctx context.Context, s store.Store) system.DependencyStatus {
	pinger, ok := s.(store.Pinger)
	if !ok {
		return system.DependencyStatus{
			Status:  constants.HealthStatusHealthy,
			Driver:  s.Driver(),
			Message: constants.MsgDepStatusNoProbe,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := pinger.Ping(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return system.DependencyStatus{
			Status:    constants.HealthStatusUnhealthy,
			LatencyMs: latency,
			Driver:    s.Driver(),
			Message:   err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:    constants.HealthStatusHealthy,
		LatencyMs: latency,
		Driver:    s.Driver(),
		Message:   constants.MsgDepStatusHealthy,
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}

package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/grocery-price-server/internal/service/api/constants"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/grocery-price-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// hstsMaxAge TLS 서버에서 Strict-Transport-Security 헤더에 사용할 max-age(초, 1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS TLS로 서비스할 때 Strict-Transport-Security 헤더를 추가할지 여부
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	// 개발 환경: ["*"] 또는 ["http://localhost:3000"]
	// 프로덕션 환경: 특정 도메인만 명시 (예: ["https://example.com"])
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: 30초)
	// 초과 시 요청 컨텍스트가 취소되고 저장소 조회는 504로 응답합니다.
	RequestTimeout time.Duration
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 핸들러와 이후 미들웨어의 panic을 복구하고 스택 트레이스와 함께 로깅
//  2. RequestID - 요청마다 X-Request-ID 부여 (로깅보다 먼저 적용되어야 로그에 포함됨)
//  3. ServerHeader - 응답 헤더의 Server 값 제거
//  4. HTTPLogger - 요청/응답 구조화 로깅 (민감한 쿼리 파라미터 마스킹)
//  5. RateLimit - IP별 초당 요청 수 제한 (기본: 20 req/s, 버스트: 40, 초과 시 429)
//  6. BodyLimit - 요청 본문 크기 제한 (기본: 64KB, 초과 시 413)
//  7. ContextTimeout - 요청 컨텍스트 마감 시간 설정
//  8. CORS - 허용된 Origin의 조회 요청(GET, HEAD, OPTIONS)만 허용
//  9. Secure - XSS, 클릭재킹 방지 헤더 및 TLS 사용 시 HSTS 헤더
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그도 애플리케이션 로거로 출력한다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimit(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
		// 에러 분류는 전역 에러 핸들러가 담당한다.
		ErrorHandler: func(err error, c echo.Context) error {
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}

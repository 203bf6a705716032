package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/grocery-price-server/internal/service/api/constants"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxIPRateLimiters 메모리에 유지하는 IP별 Limiter의 최대 개수
	// 한도에 도달하면 임의의 항목 하나를 제거한 뒤 새 항목을 추가합니다.
	maxIPRateLimiters = 10000

	// headerRetryAfter RFC 7231 7.1.3 재시도 대기 시간 헤더
	headerRetryAfter = "Retry-After"

	// retryAfterSeconds 429 응답의 Retry-After 헤더 값(초)
	retryAfterSeconds = "1"
)

// ipRateLimiter IP 주소별 토큰 버킷을 관리합니다.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// allow ip의 토큰 하나를 소비합니다. 토큰이 없으면 false를 반환합니다.
func (l *ipRateLimiter) allow(ip string) bool {
	return l.limiter(ip).Allow()
}

func (l *ipRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok := l.limiters[ip]; ok {
		return limiter
	}

	if len(l.limiters) >= maxIPRateLimiters {
		for oldIP := range l.limiters {
			delete(l.limiters, oldIP)
			break
		}
	}

	limiter := rate.NewLimiter(l.rate, l.burst)
	l.limiters[ip] = limiter
	return limiter
}

func (l *ipRateLimiter) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// RateLimit IP별 요청 속도를 제한하는 미들웨어를 반환합니다.
//
// 초당 requestsPerSecond개의 토큰이 채워지고 최대 burst개까지 쌓입니다.
// 토큰이 없으면 Retry-After 헤더와 함께 429를 반환합니다. 제한은 프로세스 메모리 안에서만 유지됩니다.
//
// requestsPerSecond 또는 burst가 0 이하이면 패닉이 발생합니다.
func RateLimit(requestsPerSecond, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if !limiter.allow(ip) {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn("요청 차단: 속도 제한(Rate Limit)을 초과하였습니다")

				c.Response().Header().Set(headerRetryAfter, retryAfterSeconds)
				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}

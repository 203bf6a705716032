package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/constants"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/httputil"
)

// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환하는 429 에러입니다.
var ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

// NewErrPanicRecovered 복구된 패닉 값을 내부 오류로 변환합니다.
func NewErrPanicRecovered(r any) error {
	if err, ok := r.(error); ok {
		return apperrors.Wrap(err, apperrors.Internal, "핸들러 실행 중 패닉이 발생했습니다")
	}
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}

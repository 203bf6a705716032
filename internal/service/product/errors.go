package product

import (
	"context"
	"errors"

	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
)

// NewErrUnknownRetailer 등록되지 않은 판매처를 조회할 때 반환하는 에러를 생성합니다.
func NewErrUnknownRetailer(name string) error {
	return apperrors.Newf(apperrors.NotFound, "등록되지 않은 판매처입니다: '%s'", name)
}

// NewErrFetchFailed 판매처 저장소 조회에 실패했을 때 반환하는 에러를 생성합니다.
// 원인 에러의 타입을 유지하며, 타입이 없는 외부 에러는 System으로 분류합니다.
// 요청 컨텍스트의 마감 시간 초과는 Timeout으로 분류합니다.
func NewErrFetchFailed(err error, retailer string) error {
	errType := apperrors.UnderlyingType(err)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		errType = apperrors.Timeout
	case errType == apperrors.Unknown:
		errType = apperrors.System
	}
	return apperrors.Wrapf(err, errType, "%s 상품 조회 실패", retailer)
}

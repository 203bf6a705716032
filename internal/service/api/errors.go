package api

import (
	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
)

var (
	// ErrProductServiceNotInitialized 상품 조회 서비스 없이 API 서비스를 시작하려 할 때 반환하는 에러입니다.
	ErrProductServiceNotInitialized = apperrors.New(apperrors.Internal, "ProductService 객체가 초기화되지 않았습니다")

	// ErrStoresNotInitialized 판매처 저장소 목록 없이 API 서비스를 시작하려 할 때 반환하는 에러입니다.
	ErrStoresNotInitialized = apperrors.New(apperrors.Internal, "StoreRegistry 객체가 초기화되지 않았습니다")
)

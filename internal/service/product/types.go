package product

import (
	"github.com/darkkaiser/grocery-price-server/internal/pricing"
	"github.com/darkkaiser/grocery-price-server/internal/store"
	"github.com/shopspring/decimal"
)

// PricedRecord 목표 중량 기준 가격이 계산된 상품 레코드입니다.
type PricedRecord struct {
	store.RawProduct

	// Source 레코드를 제공한 판매처의 표시 이름 (예: "ATB")
	Source string

	PriceForTarget          decimal.Decimal
	SecondaryPriceForTarget decimal.Decimal // 보조 가격이 없으면 0

	TargetGrams  decimal.Decimal
	BaseQuantity decimal.Decimal
}

// ComparableRecord 판매처 간 비교를 위한 g당 가격이 추가된 레코드입니다.
type ComparableRecord struct {
	PricedRecord

	PricePerGram decimal.Decimal
}

// ParsedRecord 가격 문자열을 해석한 상품 레코드입니다.
type ParsedRecord struct {
	store.RawProduct

	Source    string
	PriceData pricing.PriceDescriptor
}

// Query 목표 중량 가격 조회 조건입니다.
type Query struct {
	Name     string
	Category string

	// TargetGrams 0 이하이면 서비스의 기본 목표 중량을 사용합니다.
	TargetGrams decimal.Decimal

	Order pricing.Order
}

// SortedQuery 가격 문자열 해석 기반 정렬 조회 조건입니다. 이름과 카테고리 모두 부분 일치로 비교합니다.
type SortedQuery struct {
	Name     string
	Category string
	Order    pricing.Order
}

package product

import "github.com/darkkaiser/grocery-price-server/internal/pricing"

// ProductResponse 저장소에 기록된 상품 레코드
type ProductResponse struct {
	// 상품 식별자
	ID string `json:"id,omitempty" example:"10231"`
	// 상품명
	Name string `json:"name" example:"Молоко 2,5% 900г"`
	// 카테고리
	Category string `json:"category" example:"Молочні продукти"`
	// 저장소에 기록된 가격 문자열
	Price string `json:"price" example:"45.90"`
	// 보조(할인) 가격 문자열
	PriceBot string `json:"price_bot,omitempty" example:"41.30"`
	// 단위 코드
	Unit string `json:"unit" example:"г"`
	// 단위 수량 (없으면 null)
	Quantity *float64 `json:"quantity" example:"900"`
	// 상품 이미지 URL
	ImageURL string `json:"image_url,omitempty" example:"https://example.com/p/10231.jpg"`
}

// PricedProductResponse 목표 중량 기준 가격이 계산된 상품
type PricedProductResponse struct {
	ProductResponse

	// 목표 중량 기준 가격
	PriceForX float64 `json:"priceforx" example:"5.1"`
	// 목표 중량 기준 보조 가격 (보조 가격이 없으면 0)
	PriceForXBot float64 `json:"priceforxbot" example:"4.59"`
	// 목표 중량(g)
	X float64 `json:"x" example:"100"`
	// 판매처 표시 이름
	Store string `json:"store" example:"ATB"`
}

// ComparedProductResponse 판매처 간 비교용 g당 가격이 포함된 상품
type ComparedProductResponse struct {
	PricedProductResponse

	// g당 가격
	PricePerUnit float64 `json:"pricePerUnit" example:"0.051"`
}

// SortedProductResponse 가격 문자열을 해석한 상품
type SortedProductResponse struct {
	ProductResponse

	// 판매처 표시 이름
	Store string `json:"store" example:"Silpo"`
	// 해석된 가격 정보
	PriceData pricing.PriceDescriptor `json:"priceData" swaggertype:"object"`
}

// AllSortedResponse 판매처 식별자별 정렬 결과 (키: atb, silpo)
type AllSortedResponse map[string][]SortedProductResponse

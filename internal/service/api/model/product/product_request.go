package product

// ProductQuery 상품 가격 조회 API의 쿼리 파라미터
type ProductQuery struct {
	// 상품명 부분 일치 필터 (대소문자 무시)
	Name string `query:"name" validate:"max=200" korean:"상품명" example:"молоко"`
	// 카테고리 필터
	Category string `query:"category" validate:"max=200" korean:"카테고리" example:"Молочні продукти"`
	// 목표 중량(g). 숫자가 아니거나 0 이하이면 기본값을 사용합니다.
	Grams string `query:"grams" korean:"목표 중량" example:"250"`
	// 정렬 방향 (asc, desc). 그 외 값은 asc로 처리합니다.
	SortOrder string `query:"sortOrder" korean:"정렬 순서" example:"asc"`
	// sortOrder의 별칭 (정렬 조회 경로 전용)
	Direction string `query:"direction" korean:"정렬 방향" example:"desc"`
}

// Order sortOrder가 비어 있으면 direction을 사용합니다.
func (q ProductQuery) Order() string {
	if q.SortOrder != "" {
		return q.SortOrder
	}
	return q.Direction
}

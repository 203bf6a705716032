// Package pricing 판매처별로 제각각인 가격/단위/수량 표현을 하나의 비교 가능한 단가로 정규화합니다.
//
// 두 가지 경로를 제공합니다.
//
//   - 단위 코드 경로: Vocabulary.Normalize 로 기준 수량(g 환산)을 구한 뒤 PriceFor 로 목표 중량 가격을 계산합니다.
//   - 가격 문자열 경로: Parse 로 "89.99 грн/100г" 같은 가격 문자열과 상품명에서 100g당 가격을 추출합니다.
//
// 두 경로 모두 SortBy / SortByFloat 로 안정 정렬합니다.
package pricing

package store

import (
	"strings"

	"github.com/darkkaiser/grocery-price-server/pkg/strutil"
	"github.com/shopspring/decimal"
)

// RawProduct 저장소에서 읽은 가공 전 상품 레코드입니다.
//
// Price, BotPrice는 저장소에 기록된 형태(숫자 또는 숫자 문자열) 그대로의 텍스트이고,
// Unit은 판매처 고유의 단위 코드입니다.
type RawProduct struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Category string              `json:"category"`
	Price    string              `json:"price"`
	BotPrice string              `json:"price_bot"`
	Unit     string              `json:"unit"`
	Quantity decimal.NullDecimal `json:"quantity"`
	ImageURL string              `json:"image_url"`
}

// CategoryMatch 카테고리 필터의 비교 방식입니다.
type CategoryMatch int

const (
	// CategoryExact 대소문자를 무시한 완전 일치
	CategoryExact CategoryMatch = iota

	// CategorySubstring 대소문자를 무시한 부분 일치
	CategorySubstring
)

// Filter 상품 조회 조건입니다. 빈 값은 조건을 적용하지 않습니다.
// 이름은 항상 대소문자를 무시한 부분 일치로 비교합니다.
type Filter struct {
	Name          string
	Category      string
	CategoryMatch CategoryMatch
}

// Matches p가 조회 조건을 만족하는지 검사합니다.
func (f Filter) Matches(p RawProduct) bool {
	if name := strings.TrimSpace(f.Name); name != "" && !strutil.ContainsFold(p.Name, name) {
		return false
	}

	category := strings.TrimSpace(f.Category)
	if category == "" {
		return true
	}
	if f.CategoryMatch == CategorySubstring {
		return strutil.ContainsFold(p.Category, category)
	}
	return strutil.EqualFold(strings.TrimSpace(p.Category), category)
}

// filterRecords 조건을 만족하는 레코드를 원래 순서대로 담은 새 슬라이스를 반환합니다.
func filterRecords(records []RawProduct, f Filter) []RawProduct {
	result := make([]RawProduct, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			result = append(result, r)
		}
	}
	return result
}

// parseQuantity 저장소의 수량 텍스트를 decimal로 변환합니다. 비어 있거나 숫자가 아니면 Valid=false 입니다.
func parseQuantity(s string) decimal.NullDecimal {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

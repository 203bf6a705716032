package pricing

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Order 정렬 방향입니다.
type Order int

const (
	Asc Order = iota
	Desc
)

// ParseOrder "desc"(대소문자 무시)이면 Desc, 그 외의 값이나 빈 값이면 Asc를 반환합니다.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Desc
	}
	return Asc
}

func (o Order) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}

// SortBy items를 key 기준으로 안정 정렬한 새 슬라이스를 반환합니다. items는 변경하지 않습니다.
// Desc는 키 순서만 뒤집으며 키가 같은 항목들은 원래 순서를 유지합니다.
func SortBy[T any](items []T, order Order, key func(T) decimal.Decimal) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if order == Desc {
			return key(b).Cmp(key(a))
		}
		return key(a).Cmp(key(b))
	})
	return sorted
}

// SortByFloat SortBy 와 같지만 float64 키를 사용합니다. NaN 키는 정렬 방향과 관계없이 맨 뒤에 놓입니다.
func SortByFloat[T any](items []T, order Order, key func(T) float64) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch naA, naB := math.IsNaN(ka), math.IsNaN(kb); {
		case naA && naB:
			return 0
		case naA:
			return 1
		case naB:
			return -1
		}
		if order == Desc {
			return cmp.Compare(kb, ka)
		}
		return cmp.Compare(ka, kb)
	})
	return sorted
}

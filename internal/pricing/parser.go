package pricing

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// UnitType 가격이 어떤 단위 기준으로 표시되었는지를 나타냅니다.
type UnitType string

const (
	UnitPer100g   UnitType = "per100g"
	UnitPerKg     UnitType = "perKg"
	UnitPerPiece  UnitType = "perPiece"
	UnitPerCustom UnitType = "perCustom"
)

// PriceDescriptor 가격 문자열을 해석한 결과입니다.
type PriceDescriptor struct {
	OriginalPrice string
	NumericPrice  float64  // 숫자를 찾지 못하면 NaN
	PricePer100g  *float64 // 중량 기준을 알 수 없으면 nil
	UnitType      UnitType
}

type priceDescriptorJSON struct {
	OriginalPrice string   `json:"originalPrice"`
	NumericPrice  *float64 `json:"numericPrice"`
	PricePer100g  *float64 `json:"pricePer100g,omitempty"`
	UnitType      UnitType `json:"unitType"`
}

// MarshalJSON NaN 값은 JSON으로 표현할 수 없으므로 null로 출력합니다.
func (d PriceDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(priceDescriptorJSON{
		OriginalPrice: d.OriginalPrice,
		NumericPrice:  finiteOrNil(&d.NumericPrice),
		PricePer100g:  finiteOrNil(d.PricePer100g),
		UnitType:      d.UnitType,
	})
}

func finiteOrNil(f *float64) *float64 {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}
	v := *f
	return &v
}

// SortKey 정렬 기준 값을 반환합니다. 100g당 가격이 있으면 그 값을, 없으면 숫자 가격을 사용합니다.
func (d PriceDescriptor) SortKey() float64 {
	if d.PricePer100g != nil {
		return *d.PricePer100g
	}
	return d.NumericPrice
}

// weightUnits 중량 단위 목록입니다. 정규식 교대(alternation)에서 긴 표기가 먼저 시도되어야 합니다.
const weightUnits = `грамм|грам|grams|gram|гр|кг|kg|мл|ml|г|g|л|l`

var (
	// "/500г", "/ 1,5 кг" 형식
	slashWeightRegexp = regexp.MustCompile(`(?i)/\s*(\d+(?:[.,]\d+)?)\s*(` + weightUnits + `)(?:[^\p{L}]|$)`)

	// 상품명 안의 "500мл", "1.5 кг" 형식
	nameWeightRegexp = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(` + weightUnits + `)(?:[^\p{L}]|$)`)
)

var (
	per100gSuffixes = []string{"/100г", "/100гр", "/100g"}
	perKgSuffixes   = []string{"/кг", "/kg"}
)

// Parse 가격 문자열과 상품명으로부터 PriceDescriptor를 생성합니다.
//
// 우선순위:
//  1. 가격 문자열의 첫 번째 숫자를 가격으로 사용합니다. (기본 단위: perPiece)
//  2. 가격 문자열에 "/<수량><단위>" 가 있으면 그 중량으로 100g당 가격을 계산합니다.
//  3. 없으면 상품명에서 "<수량><단위>" 를 찾아 같은 방식으로 계산합니다.
//  4. 둘 다 없으면 "/100г" 또는 "/кг" 로 끝나는지에 따라 분류합니다.
//
// 중량이 0인 표기는 무시하고 다음 규칙으로 넘어갑니다.
// 가격 숫자를 찾을 수 없어도 에러를 반환하지 않으며 NumericPrice는 NaN이 됩니다.
func Parse(priceText, productName string) PriceDescriptor {
	price := math.NaN()
	if token, ok := firstNumber(priceText); ok {
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			price = f
		}
	}

	d := PriceDescriptor{
		OriginalPrice: priceText,
		NumericPrice:  price,
		UnitType:      UnitPerPiece,
	}

	for _, match := range []struct {
		re   *regexp.Regexp
		text string
	}{
		{slashWeightRegexp, priceText},
		{nameWeightRegexp, productName},
	} {
		grams, ok := matchGrams(match.re, match.text)
		if !ok {
			continue
		}
		per100g := price * 100 / grams
		d.PricePer100g = &per100g
		d.UnitType = classifyGrams(grams)
		return d
	}

	lower := strings.ToLower(strings.TrimSpace(priceText))
	per100g := price
	switch {
	case hasAnySuffix(lower, per100gSuffixes):
		d.UnitType = UnitPer100g
	case hasAnySuffix(lower, perKgSuffixes):
		d.UnitType = UnitPerKg
		per100g = price / 10
	}
	d.PricePer100g = &per100g

	return d
}

// matchGrams text에서 중량 표기를 찾아 g 환산값을 반환합니다. kg/l 은 1000배 합니다.
// 표기가 없거나 환산값이 0 이하이면 false를 반환합니다.
func matchGrams(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}

	switch strings.ToLower(m[2]) {
	case "кг", "kg", "л", "l":
		value *= 1000
	}

	if value <= 0 {
		return 0, false
	}
	return value, true
}

func classifyGrams(grams float64) UnitType {
	switch grams {
	case 100:
		return UnitPer100g
	case 1000:
		return UnitPerKg
	default:
		return UnitPerCustom
	}
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

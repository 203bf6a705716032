package pricing

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numberRegexp 가격 문자열에서 첫 번째 숫자 토큰을 찾습니다. 소수 구분자는 '.' 또는 ','입니다.
// "1 234,50" 처럼 공백(NBSP 포함)으로 구분한 천 단위 묶음도 하나의 토큰으로 읽습니다.
var numberRegexp = regexp.MustCompile(`\d{1,3}(?:[ \x{00A0}\x{202F}]\d{3})+(?:[.,]\d+)?|\d+(?:[.,]\d+)?`)

// groupSeparators 천 단위 구분 공백을 제거합니다.
var groupSeparators = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "")

// firstNumber s의 첫 번째 숫자 토큰을 '.' 소수 구분자 형식으로 반환합니다.
func firstNumber(s string) (string, bool) {
	token := numberRegexp.FindString(s)
	if token == "" {
		return "", false
	}
	return strings.Replace(groupSeparators.Replace(token), ",", ".", 1), true
}

// ParseAmount "42,50", "42.50 грн" 같은 숫자 또는 숫자 문자열 가격을 decimal로 변환합니다.
// 숫자를 찾을 수 없으면 false를 반환합니다. 부호는 무시하므로 결과는 항상 0 이상입니다.
func ParseAmount(s string) (decimal.Decimal, bool) {
	token, ok := firstNumber(s)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseOptionalAmount 보조 가격처럼 없을 수 있는 값을 변환합니다. 비어 있거나 숫자가 아니면 Valid=false 입니다.
func ParseOptionalAmount(s string) decimal.NullDecimal {
	d, ok := ParseAmount(s)
	return decimal.NullDecimal{Decimal: d, Valid: ok}
}

// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  Молоко   2,5%  " -> "Молоко 2,5%"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitAndTrim sep으로 분리한 뒤 각 항목의 공백을 제거하고 빈 항목을 제외합니다.
// 결과가 없으면 nil을 반환합니다.
func SplitAndTrim(s, sep string) []string {
	var result []string
	for _, token := range strings.Split(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}

// Fold 대소문자 구분 없는 비교를 위해 문자열을 정규화합니다.
//
// NFC 정규화 후 유니코드 케이스 폴딩을 적용하므로 키릴 문자("МОЛОКО" / "молоко")와
// 조합형/완성형 표기 차이가 같은 값으로 정규화됩니다.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// EqualFold a와 b가 Fold 기준으로 같은지 검사합니다.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// ContainsFold s에 substr이 Fold 기준으로 포함되어 있는지 검사합니다.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(Fold(s), Fold(substr))
}

// MaskSensitiveData 민감한 값을 로그에 남길 수 있도록 마스킹합니다.
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}

package validation

import (
	"fmt"
	"regexp"
)

var sqlIdentifierRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// ValidateSQLIdentifier name이 따옴표 없이 쿼리에 넣을 수 있는 테이블/컬럼 이름인지 검증합니다.
// 영문자 또는 '_'로 시작하고 영문자, 숫자, '_'만 포함하는 최대 63자의 이름만 허용합니다.
func ValidateSQLIdentifier(name string) error {
	if !sqlIdentifierRegexp.MatchString(name) {
		return fmt.Errorf("SQL 식별자는 영문자 또는 '_'로 시작하고 영문자, 숫자, '_'만 포함해야 합니다 (input=%q)", name)
	}
	return nil
}

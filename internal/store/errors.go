package store

import (
	"fmt"

	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
)

// ErrStoreClosed 닫힌 저장소를 조회할 때 반환하는 에러입니다.
var ErrStoreClosed = apperrors.New(apperrors.Unavailable, "상품 저장소가 이미 닫혔습니다")

// NewErrUnsupportedDriver 등록되지 않은 드라이버가 설정되었을 때 반환하는 에러를 생성합니다.
func NewErrUnsupportedDriver(driver string) error {
	return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 저장소 드라이버입니다: '%s'", driver)
}

// NewErrInvalidOptions 드라이버 옵션을 해석할 수 없을 때 반환하는 에러를 생성합니다.
func NewErrInvalidOptions(err error, contextName string) error {
	return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 설정을 해석할 수 없습니다", contextName))
}

// NewErrOpenFailed 데이터베이스를 열 수 없을 때 반환하는 에러를 생성합니다.
func NewErrOpenFailed(err error, path string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("상품 데이터베이스 연결 실패 (%s)", path))
}

// NewErrQueryFailed 상품 테이블 조회에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrQueryFailed(err error, table string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("상품 테이블 조회 실패 (%s)", table))
}

// NewErrSnapshotReadFailed 스냅샷 파일을 읽을 수 없을 때 반환하는 에러를 생성합니다.
func NewErrSnapshotReadFailed(err error, path string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("상품 스냅샷 파일 읽기 실패 (%s)", path))
}

// NewErrSnapshotParseFailed 스냅샷 파일의 형식이 잘못되었을 때 반환하는 에러를 생성합니다.
func NewErrSnapshotParseFailed(err error, path string) error {
	return apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("상품 스냅샷 파일 파싱 실패 (%s)", path))
}

// NewErrSnapshotFormat 스냅샷 파일의 구조가 기대와 다를 때 반환하는 에러를 생성합니다.
func NewErrSnapshotFormat(path, reason string) error {
	return apperrors.Newf(apperrors.ParsingFailed, "상품 스냅샷 파일 형식 오류 (%s): %s", path, reason)
}

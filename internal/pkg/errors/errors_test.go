package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

// =============================================================================
// ErrorType
// =============================================================================

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType ErrorType
		want    string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{InvalidInput, "InvalidInput"},
		{NotFound, "NotFound"},
		{ParsingFailed, "ParsingFailed"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
		{ErrorType(99), "ErrorType(99)"},
		{ErrorType(-1), "ErrorType(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.errType.String())
		})
	}
}

// =============================================================================
// 생성 및 래핑
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	err := New(NotFound, "등록되지 않은 판매처입니다")

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, NotFound, appErr.Type())
	assert.Equal(t, "등록되지 않은 판매처입니다", appErr.Message())
	assert.Equal(t, "[NotFound] 등록되지 않은 판매처입니다", err.Error())
	assert.Nil(t, appErr.Unwrap())
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "잘못된 값: %d", 42)
	assert.Equal(t, "[InvalidInput] 잘못된 값: 42", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("외부 에러 래핑", func(t *testing.T) {
		t.Parallel()

		err := Wrap(errStd, System, "상품 테이블 조회 실패")
		assert.Equal(t, "[System] 상품 테이블 조회 실패: standard error", err.Error())
		assert.True(t, errors.Is(err, errStd))
	})

	t.Run("nil 에러는 nil 반환", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Wrap(nil, System, "ignored"))
		assert.Nil(t, Wrapf(nil, System, "ignored %d", 1))
	})

	t.Run("Wrapf 포맷 적용", func(t *testing.T) {
		t.Parallel()

		err := Wrapf(errStd, ParsingFailed, "%s 파일 파싱 실패", "atb.csv")
		assert.Equal(t, "[ParsingFailed] atb.csv 파일 파싱 실패: standard error", err.Error())
	})
}

func TestStackCapture(t *testing.T) {
	t.Parallel()

	err := New(Internal, "boom")

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	require.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	assert.LessOrEqual(t, len(appErr.Stack()), maxStackFrames)
}

// =============================================================================
// 탐색
// =============================================================================

func TestIs(t *testing.T) {
	t.Parallel()

	err := Wrap(New(NotFound, "not found"), Internal, "lookup failed")

	assert.True(t, Is(err, NotFound))
	assert.True(t, Is(err, Internal))
	assert.False(t, Is(err, System))
	assert.False(t, Is(nil, System))
	assert.False(t, Is(errStd, Unknown))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(errStd, System, "inner"), Internal, "outer")
	assert.Equal(t, errStd, RootCause(err))
	assert.Nil(t, RootCause(nil))
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, Unknown},
		{"표준 에러", errStd, Unknown},
		{"단일 AppError", New(Timeout, "slow"), Timeout},
		{"중첩 체인", Wrap(New(NotFound, "x"), Internal, "y"), NotFound},
		{"외부 에러 래핑", Wrap(context.DeadlineExceeded, Timeout, "fetch"), Timeout},
		{"fmt 래핑", fmt.Errorf("ctx: %w", New(Unavailable, "down")), Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, UnderlyingType(tt.err))
		})
	}
}

// =============================================================================
// 포맷
// =============================================================================

func TestFormat(t *testing.T) {
	t.Parallel()

	err := Wrap(New(NotFound, "inner"), Internal, "outer")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[Internal] outer")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[NotFound] inner")
	assert.Contains(t, detailed, "Stack trace:")
}

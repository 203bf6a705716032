package handler

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleQuery struct {
	Name      string `validate:"max=10" korean:"상품명"`
	Category  string `validate:"required" korean:"카테고리"`
	SortOrder string `validate:"omitempty,oneof=asc desc" korean:"정렬 순서"`
	Limit     int    `validate:"min=1" korean:"개수"`
	Untagged  string `validate:"omitempty,len=2"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	const routines = 50
	validators := make([]*validator.Validate, routines)

	var wg sync.WaitGroup
	for i := 0; i < routines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			validators[i] = getValidator()
		}(i)
	}
	wg.Wait()

	for i := 1; i < routines; i++ {
		assert.Same(t, validators[0], validators[i])
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	valid := sampleQuery{Name: "Молоко", Category: "Сири", Limit: 1}

	tests := []struct {
		name    string
		mutate  func(*sampleQuery)
		wantMsg string
	}{
		{"정상", func(*sampleQuery) {}, ""},
		{"최대 길이는 룬 단위", func(q *sampleQuery) { q.Name = strings.Repeat("М", 10) }, ""},
		{"최대 길이 초과", func(q *sampleQuery) { q.Name = strings.Repeat("М", 11) }, "상품명는 최대 10자까지 입력 가능합니다"},
		{"필수 값 누락", func(q *sampleQuery) { q.Category = "" }, "카테고리는 필수입니다"},
		{"허용되지 않은 값", func(q *sampleQuery) { q.SortOrder = "up" }, "정렬 순서는 다음 값 중 하나여야 합니다: asc desc"},
		{"숫자 최솟값", func(q *sampleQuery) { q.Limit = 0 }, "개수는 최소 1 이상이어야 합니다"},
		{"korean 태그가 없으면 필드명 사용", func(q *sampleQuery) { q.Untagged = "abc" }, "Untagged 검증 실패: len"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := valid
			tt.mutate(&q)

			err := ValidateRequest(&q)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantMsg, FormatValidationError(err))
		})
	}
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatValidationError(nil))
	assert.Equal(t, "plain", FormatValidationError(errors.New("plain")))
}

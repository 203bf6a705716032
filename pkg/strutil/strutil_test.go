package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"  Молоко   2,5%  ", "Молоко 2,5%"},
		{"a\tb\nc", "a b c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSpaces(tt.in), "input=%q", tt.in)
	}
}

func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, SplitAndTrim("a, , b,c", ","))
	assert.Nil(t, SplitAndTrim(" , ", ","))
	assert.Nil(t, SplitAndTrim("", ","))
}

// =============================================================================
// Case Folding
// =============================================================================

func TestEqualFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"키릴 대소문자", "МОЛОКО", "молоко", true},
		{"라틴 대소문자", "Dairy", "dAIRY", true},
		{"조합형과 완성형", "\u0439", "\u0438\u0306", true},
		{"다른 문자열", "Сир", "Сік", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EqualFold(tt.a, tt.b))
		})
	}
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	assert.True(t, ContainsFold("Молоко Яготинське 2,6%", "яготинське"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Хліб", "молоко"))
}

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", MaskSensitiveData(""))
	assert.Equal(t, "***", MaskSensitiveData("abc"))
	assert.Equal(t, "secr***", MaskSensitiveData("secret12"))
	assert.Equal(t, "file***2345", MaskSensitiveData("file:/var/db/12345"))
}

package config

import (
	"testing"

	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleOptions struct {
	Path  string `json:"path" validate:"required"`
	Table string `json:"table" validate:"omitempty,sql_identifier"`
	Spec  string `json:"spec" validate:"omitempty,cron_spec"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    sampleOptions
		wantMsg string
	}{
		{"정상", sampleOptions{Path: "prices.db", Table: "atb_products", Spec: "@hourly"}, ""},
		{"필수값 누락", sampleOptions{}, "필수 설정(path)"},
		{"잘못된 테이블 이름", sampleOptions{Path: "x", Table: "atb products"}, "table는 영문자"},
		{"잘못된 Cron", sampleOptions{Path: "x", Spec: "bad"}, "Cron 표현식(spec)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.opts, "sqlite 저장소 옵션")
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Contains(t, err.Error(), "sqlite 저장소 옵션")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

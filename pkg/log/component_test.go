package log

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithComponentAndFields(t *testing.T) {
	t.Parallel()

	fields := Fields{"retailer": "atb", ComponentKey: "overridden"}
	entry := WithComponentAndFields("store.sqlite", fields)

	assert.Equal(t, "store.sqlite", entry.Data[ComponentKey])
	assert.Equal(t, "atb", entry.Data["retailer"])
	assert.Equal(t, "overridden", fields[ComponentKey], "원본 맵은 변경되지 않아야 합니다")
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "api.service", WithComponent("api.service").Data[ComponentKey])
}

func TestNewTextFormatter_CallerPrefix(t *testing.T) {
	t.Parallel()

	f := newTextFormatter("github.com/darkkaiser/grocery-price-server")
	frame := runtime.Frame{Function: "github.com/darkkaiser/grocery-price-server/internal/pricing.Parse", Line: 42}
	fn, file := f.CallerPrettyfier(&frame)
	assert.Equal(t, ".../internal/pricing.Parse(line:42)", fn)
	assert.Empty(t, file)
}

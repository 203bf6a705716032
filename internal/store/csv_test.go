package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const silpoCSV = "\xEF\xBB\xBFName,Category,Price,Price_Bot,Unit,Quantity,Image_URL,Extra\n" +
	"Йогурт 300г,Молочні продукти,\"32,90\",29.90,г,300,https://img/1.png,x\n" +
	"Вода 1.5л,Напої,19.50,,л,\"1,5\",,\n" +
	"Банани,Фрукти,64.99,,кг,,,\n"

func TestCSVStore_Load(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "silpo.csv", silpoCSV)
	s, err := newCSVStore(context.Background(), "silpo", &csvOptions{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.Find(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	first := got[0]
	assert.Equal(t, "Йогурт 300г", first.Name)
	assert.Equal(t, "Молочні продукти", first.Category)
	assert.Equal(t, "32,90", first.Price)
	assert.Equal(t, "29.90", first.BotPrice)
	assert.Equal(t, "г", first.Unit)
	assert.True(t, decimal.NewFromInt(300).Equal(first.Quantity.Decimal))
	assert.Equal(t, "https://img/1.png", first.ImageURL)
	assert.Empty(t, first.ID)

	assert.True(t, decimal.RequireFromString("1.5").Equal(got[1].Quantity.Decimal))
	assert.False(t, got[2].Quantity.Valid)
	assert.Empty(t, got[2].BotPrice)
	assert.Equal(t, "csv", s.Driver())
}

func TestCSVStore_Delimiter(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "atb.csv", "name;price;unit\nСир;450;кг\n")
	s, err := newCSVStore(context.Background(), "atb", &csvOptions{Path: path, Delimiter: ";"})
	require.NoError(t, err)

	got, err := s.Find(context.Background(), Filter{Name: "сир"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "450", got[0].Price)
	assert.Equal(t, "кг", got[0].Unit)
}

func TestCSVStore_Reload(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "silpo.csv", silpoCSV)
	s, err := newCSVStore(context.Background(), "silpo", &csvOptions{Path: path})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("name,price\nКава 250г,189\n"), 0o644))
	require.NoError(t, s.Reload(context.Background()))

	got, err := s.Find(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Кава 250г"}, names(got))

	t.Run("실패 시 기존 레코드 유지", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("category\nНапої\n"), 0o644))

		err := s.Reload(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))

		got, err := s.Find(context.Background(), Filter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Кава 250г"}, names(got))
	})
}

func TestCSVStore_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		wantType apperrors.ErrorType
	}{
		{"빈 파일", "", apperrors.ParsingFailed},
		{"name 열 없음", "title,price\nx,1\n", apperrors.ParsingFailed},
		{"price 열 없음", "name,cost\nx,1\n", apperrors.ParsingFailed},
		{"잘못된 따옴표", "name,price\n\"x,1\n", apperrors.ParsingFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "bad.csv", tt.content)
			_, err := newCSVStore(context.Background(), "atb", &csvOptions{Path: path})
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.wantType), "err=%v", err)
		})
	}

	t.Run("파일 없음", func(t *testing.T) {
		t.Parallel()

		_, err := newCSVStore(context.Background(), "atb", &csvOptions{Path: filepath.Join(t.TempDir(), "missing.csv")})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})
}

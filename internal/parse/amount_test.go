package parse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmounts(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantValues []string
	}{
		{
			name:       "currency symbol prefix",
			text:       "超市购物¥45.50",
			wantValues: []string{"45.50"},
		},
		{
			name:       "fullwidth currency symbol",
			text:       "￥100充话费",
			wantValues: []string{"100"},
		},
		{
			name:       "currency word suffix",
			text:       "午饭花了30元",
			wantValues: []string{"30"},
		},
		{
			name:       "kuai suffix",
			text:       "打车15块",
			wantValues: []string{"15"},
		},
		{
			name:       "bare number with two digits",
			text:       "昨天花了45买书",
			wantValues: []string{"45"},
		},
		{
			name:       "single bare digit ignored",
			text:       "买了5个苹果",
			wantValues: nil,
		},
		{
			name:       "date suffix is not an amount",
			text:       "10号去北京",
			wantValues: nil,
		},
		{
			name:       "month suffix is not an amount",
			text:       "12月再说",
			wantValues: nil,
		},
		{
			name:       "mixed date and amount",
			text:       "9月10号打车15块",
			wantValues: []string{"15"},
		},
		{
			name:       "multiple amounts in order",
			text:       "午饭30元，晚上打车15块",
			wantValues: []string{"30", "15"},
		},
		{
			name:       "symbol and suffix do not double count",
			text:       "付了¥20元",
			wantValues: []string{"20"},
		},
		{
			name:       "empty text",
			text:       "",
			wantValues: nil,
		},
		{
			name:       "pure punctuation",
			text:       "，。！",
			wantValues: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := ExtractAmounts(tt.text)

			require.Len(t, matches, len(tt.wantValues))
			for i, want := range tt.wantValues {
				expected := decimal.RequireFromString(want)
				assert.True(t, matches[i].Value.Equal(expected),
					"match %d: want %s, got %s", i, expected, matches[i].Value)
			}
		})
	}
}

func TestExtractAmountsOffsets(t *testing.T) {
	// Offsets are codepoint indices, so multi-byte runes count as one.
	matches := ExtractAmounts("午饭花了30元")

	require.Len(t, matches, 1)
	assert.Equal(t, 4, matches[0].Start)
	assert.Equal(t, 7, matches[0].End)
	assert.Equal(t, "30元", matches[0].RawText)
}

func TestExtractAmountsOrderedAndDisjoint(t *testing.T) {
	matches := ExtractAmounts("早饭10元中饭20元晚饭30元")

	require.Len(t, matches, 3)
	for i := 1; i < len(matches); i++ {
		assert.Greater(t, matches[i].Start, matches[i-1].Start)
		assert.GreaterOrEqual(t, matches[i].Start, matches[i-1].End,
			"matches must not overlap")
	}
}

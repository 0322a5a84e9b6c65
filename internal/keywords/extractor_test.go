package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "content words survive",
			text: "요즘 우울하고 잠을 잘 못 자요",
			want: []string{"요즘", "우울하고", "잠을", "자요"},
		},
		{
			name: "stop words and short fragments dropped",
			text: "그냥 너무 피곤해 아 진짜",
			want: []string{"피곤해"},
		},
		{
			name: "punctuation split",
			text: "학교가... 싫어요!! (매일)",
			want: []string{"학교가", "싫어요", "매일"},
		},
		{
			name: "latin lowercased",
			text: "OK 괜찮아요",
			want: []string{"ok", "괜찮아요"},
		},
		{
			name: "empty",
			text: "   ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}

func TestFrequencies(t *testing.T) {
	freq := Frequencies([]string{
		"요즘 우울해요",
		"계속 우울해요",
	})

	assert.Equal(t, 2, freq["우울해요"])
	assert.Equal(t, 1, freq["요즘"])
	assert.Equal(t, 1, freq["계속"])
}

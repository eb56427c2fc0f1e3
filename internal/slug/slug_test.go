package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Esportes", "esportes"},
		{"spaces", "Slow Burn", "slow-burn"},
		{"diacritics", "Política Nacional", "politica-nacional"},
		{"more diacritics", "Últimas Notícias", "ultimas-noticias"},
		{"cedilla", "Eleições", "eleicoes"},
		{"punctuation", "Sci-Fi/Fantasy!", "sci-fi-fantasy"},
		{"underscores", "slow_burn", "slow-burn"},
		{"mixed case", "LitRPG", "litrpg"},
		{"multi space", "  multi   word ", "multi-word"},
		{"leading trailing", "--leading--", "leading"},
		{"emoji stripped", "🔥 Urgente", "urgente"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

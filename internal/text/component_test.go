package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemkit/internal/domain"
)

func TestComponent_Styling(t *testing.T) {
	base := Plain("Title")
	styled := base.Color(Gold).Decorate(Bold, Italic)

	assert.False(t, base.TextColor().IsSet(), "original must stay unstyled")
	assert.Equal(t, Gold, styled.TextColor())
	assert.True(t, styled.HasDecoration(Bold))
	assert.True(t, styled.HasDecoration(Italic))
	assert.False(t, styled.HasDecoration(Underlined))
}

func TestComponent_AppendDoesNotAlias(t *testing.T) {
	parent := Plain("a").Append(Plain("b"))
	left := parent.Append(Plain("c"))
	right := parent.Append(Plain("d"))

	assert.Equal(t, "abc", left.PlainText())
	assert.Equal(t, "abd", right.PlainText())
	assert.Len(t, parent.Children(), 1)
}

func TestComponent_Equal(t *testing.T) {
	a := Colored("x", Red).Append(Plain("y"))
	b := Colored("x", Red).Append(Plain("y"))
	c := Colored("x", Blue).Append(Plain("y"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Colored("x", Red)))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"named", "gold", Gold, false},
		{"named upper", "DARK_RED", DarkRed, false},
		{"hex", "#ff8800", RGB(domain.RGB(0xff, 0x88, 0x00)), false},
		{"unknown name", "sparkly", Color{}, true},
		{"bad hex", "#zzzzzz", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "none", Color{}.String())
	assert.Equal(t, "aqua", Aqua.String())
	assert.Equal(t, "#010203", RGB(domain.RGB(1, 2, 3)).String())
}

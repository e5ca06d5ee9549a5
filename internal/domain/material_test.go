package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaterial(t *testing.T) {
	tests := []struct {
		input   string
		want    Material
		wantErr bool
	}{
		{"STONE", MaterialStone, false},
		{"diamond_sword", MaterialDiamondSword, false},
		{"minecraft:leather_boots", MaterialLeatherBoots, false},
		{"name tag", MaterialNameTag, false},
		{"unobtainium", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMaterial(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMaterial)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaterial_Predicates(t *testing.T) {
	assert.True(t, MaterialAir.IsAir())
	assert.True(t, MaterialCaveAir.IsAir())
	assert.True(t, Material("").IsAir())
	assert.False(t, MaterialStone.IsAir())

	assert.True(t, MaterialLeatherChestplate.IsLeatherArmor())
	assert.False(t, MaterialDiamondSword.IsLeatherArmor())
}

func TestMaterial_DisplayName(t *testing.T) {
	assert.Equal(t, "Diamond Sword", MaterialDiamondSword.DisplayName())
	assert.Equal(t, "Stone", MaterialStone.DisplayName())
	assert.Equal(t, "Gray Stained Glass Pane", MaterialGrayStainedGlass.DisplayName())
}

func TestParseEnchantmentAndFlag(t *testing.T) {
	e, err := ParseEnchantment("minecraft:sharpness")
	require.NoError(t, err)
	assert.Equal(t, EnchantmentSharpness, e)
	assert.Equal(t, 5, e.MaxLevel())

	_, err = ParseEnchantment("telekinesis")
	assert.ErrorIs(t, err, ErrUnknownEnchantment)

	f, err := ParseItemFlag("hide_unbreakable")
	require.NoError(t, err)
	assert.Equal(t, FlagHideUnbreakable, f)

	_, err = ParseItemFlag("hide_everything")
	assert.ErrorIs(t, err, ErrUnknownItemFlag)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8800")
	require.NoError(t, err)
	assert.Equal(t, RGB(0xff, 0x88, 0x00), c)
	assert.Equal(t, "#ff8800", c.Hex())
	assert.Equal(t, 0xff8800, c.Int())

	_, err = ParseColor("orange")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

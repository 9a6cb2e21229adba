package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadItems(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "items.txt", "Backpack:CoolSkin,500\nPickaxe,Reaper,800\r\nGlider:Mako: 0\n")

	items, err := LoadItems(path)
	require.NoError(t, err)
	assert.Equal(t, []Cosmetic{
		{Id: "Backpack:CoolSkin", Price: 500},
		{Id: "Pickaxe:Reaper", Price: 800},
		{Id: "Glider:Mako", Price: 0},
	}, items)
}

func TestLoadItems_NotFound(t *testing.T) {
	_, err := LoadItems(filepath.Join(t.TempDir(), "items.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "items.txt")
}

func TestLoadItems_Empty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "items.txt", "")
	items, err := LoadItems(path)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseItemLine_Errors(t *testing.T) {
	cases := map[string]string{
		"one field":      "OnlyOneField",
		"two fields":     "A:100",
		"four fields":    "A:B:C:100",
		"non-numeric":    "A:B:abc",
		"decimal price":  "A:B:1.5",
		"negative price": "A:B:-5",
		"blank line":     "",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseItemLine(line)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestParseItemLine_KeepsEmptyFields(t *testing.T) {
	c, err := parseItemLine("A::5")
	require.NoError(t, err)
	assert.Equal(t, Cosmetic{Id: "A:", Price: 5}, c)
}

func TestLoadItems_StopsAtFirstBadLine(t *testing.T) {
	path := writeFile(t, t.TempDir(), "items.txt", "A:B:100\nA:B:abc\nC:D:200\n")
	_, err := LoadItems(path)
	require.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "'abc'")
}

func TestParseItemLines(t *testing.T) {
	items, err := ParseItemLines([]string{"A:B:100", "C,D,200"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A:B", "C:D"}, cosmeticIDs(items))

	_, err = ParseItemLines([]string{"A:B:100", "broken"})
	assert.ErrorIs(t, err, ErrFormat)
}

func TestFilterCatalog(t *testing.T) {
	items, err := parseItems(strings.NewReader("Backpack:A:1\nBackpack:B:2\nEmote:Floss:3\nGlider:Mako:4\n"))
	require.NoError(t, err)

	assert.Equal(t, items, FilterCatalog(items, nil))

	kept := FilterCatalog(items, []string{"Backpack:*", "*:Mako"})
	assert.Equal(t, []string{"Emote:Floss"}, cosmeticIDs(kept))
	assert.Len(t, items, 4, "input must not be modified")

	assert.Empty(t, FilterCatalog(items, []string{"*"}))
}

func TestLoadItems_StripsByteOrderMark(t *testing.T) {
	path := writeFile(t, t.TempDir(), "items.txt", "\ufeffBackpack:CoolSkin,500\nPickaxe:Reaper,800\n")

	items, err := LoadItems(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Backpack:CoolSkin", "Pickaxe:Reaper"}, cosmeticIDs(items))
}

func TestParseItemLine_PriceOutOfRange(t *testing.T) {
	c, err := parseItemLine("A:B:2147483647")
	require.NoError(t, err)
	assert.Equal(t, 2147483647, c.Price)

	_, err = parseItemLine("A:B:3000000000")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseItems_LongLines(t *testing.T) {
	long := "A:" + strings.Repeat("x", 100_000) + ":5\n"
	items, err := parseItems(strings.NewReader(long))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Price)

	tooLong := "A:B:1\nA:" + strings.Repeat("x", maxLineSize) + ":5\n"
	_, err = parseItems(strings.NewReader(tooLong))
	require.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "line 2")
}

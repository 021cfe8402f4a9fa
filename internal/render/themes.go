package render

import "dungeonforge/internal/dungeon"

// TileSet holds the glyphs used to draw one theme. Emoji render with
// their own colors, so theming is done by glyph choice rather than by
// terminal FG tinting.
type TileSet struct {
	Wall  string
	Floor string
	Door  string
	Start string
	Boss  string
	Path  string // critical-path room centers
}

// Themes maps dungeon.Theme to its tile set. The generator only assigns
// abstract cell codes; this lookup is the rendering side of that contract.
var Themes = [...]TileSet{
	dungeon.ThemeStone: {
		Wall:  "🪨",
		Floor: "⬜",
		Door:  "🚪",
		Start: "🟢",
		Boss:  "💀",
		Path:  "🔸",
	},
	dungeon.ThemeCave: {
		Wall:  "🟫",
		Floor: "🟨",
		Door:  "🚪",
		Start: "🟢",
		Boss:  "🐉",
		Path:  "🔸",
	},
	dungeon.ThemeCrypt: {
		Wall:  "🧱",
		Floor: "🔲",
		Door:  "⚰️",
		Start: "🟢",
		Boss:  "👻",
		Path:  "🕯️",
	},
	dungeon.ThemeGarden: {
		Wall:  "🌳",
		Floor: "🟩",
		Door:  "🚪",
		Start: "🟢",
		Boss:  "🐍",
		Path:  "🌼",
	},
}

// themeFor returns the tile set for t, falling back to stone.
func themeFor(t dungeon.Theme) TileSet {
	if int(t) < len(Themes) {
		return Themes[t]
	}
	return Themes[dungeon.ThemeStone]
}

package asciiwiki

import "sort"

// DefaultStyle is the style used when a request carries no style directives.
const DefaultStyle = "classic"

// styleDirectives maps a style name to the natural-language instruction
// fragment appended to the art prompt. Adding a style is a data change, not
// a logic change.
var styleDirectives = map[string]string{
	"classic": "Draw clean, traditional ASCII art using only basic keyboard " +
		"characters (/ \\ | _ - = + * . o O). Favor clear outlines and " +
		"recognizable silhouettes over texture.",
	"minimal": "Draw extremely sparse line art using as few characters as " +
		"possible. Mostly whitespace, a handful of strokes, no shading.",
	"retro": "Draw blocky 8-bit pixel-style art using # and @ for solid " +
		"fills, like an early arcade sprite.",
	"shaded": "Draw art with gradient shading using the density ramp " +
		"\" .:-=+*#%@\" to suggest light falling from the upper left.",
	"gothic": "Draw dark, dramatic art with heavy vertical strokes, pointed " +
		"arches and ornamental flourishes, like a woodcut illustration.",
	"bubble": "Draw soft, rounded, friendly art using parentheses, o, O, " +
		"( ) and curves. Everything plump and cheerful, no sharp corners.",
	"cyberpunk": "Draw angular, glitchy art mixing box-drawing characters " +
		"with stray punctuation, like a corrupted terminal readout.",
	"nature": "Draw organic, flowing art using ~ , ' \" and ^ for leaves, " +
		"water and wind. Asymmetric and hand-grown rather than geometric.",
	"geometric": "Draw the subject reduced to triangles, rectangles and " +
		"diamonds built from / \\ _ | < >. Flat, poster-like composition.",
	"typewriter": "Draw understated art limited to characters found on a " +
		"1950s typewriter: letters, digits, period, comma, hyphen, slash.",
}

// StyleDirectives returns the instruction fragment for a style name.
// The second return value reports whether the style exists.
func StyleDirectives(name string) (string, bool) {
	s, ok := styleDirectives[name]
	return s, ok
}

// StyleNames returns all known style names in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styleDirectives))
	for name := range styleDirectives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

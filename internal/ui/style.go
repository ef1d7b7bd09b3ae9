package ui

import (
	"image/color"
	"strings"
)

// Palette holds the colours the widgets draw with.
type Palette struct {
	ButtonBase      color.RGBA
	ButtonHighlight color.RGBA
	ButtonInactive  color.RGBA
	ButtonText      color.RGBA
	FrameBorder     color.RGBA
	FrameFill       color.RGBA
	FrameTrim       color.RGBA // golden separators and section outlines
	SectionFill     color.RGBA
	Backdrop        color.RGBA // drawn when the background image is missing
}

// DefaultPalette returns the stock red/gold cabinet colours.
func DefaultPalette() Palette {
	return Palette{
		ButtonBase:      color.RGBA{255, 0, 0, 255},
		ButtonHighlight: color.RGBA{255, 100, 100, 255},
		ButtonInactive:  color.RGBA{0, 255, 0, 255},
		ButtonText:      color.RGBA{0, 0, 0, 255},
		FrameBorder:     color.RGBA{75, 75, 68, 255},
		FrameFill:       color.RGBA{10, 10, 10, 255},
		FrameTrim:       color.RGBA{0xFF, 0xD7, 0x00, 0xFF},
		SectionFill:     color.RGBA{0, 0, 0, 255},
		Backdrop:        color.RGBA{24, 48, 32, 255},
	}
}

// Override replaces palette entries from a name -> "#hex" map. Unknown names and
// unparsable colours are returned so the caller can log them.
func (p *Palette) Override(colors map[string]string) (rejected []string) {
	slots := map[string]*color.RGBA{
		"button_base":      &p.ButtonBase,
		"button_highlight": &p.ButtonHighlight,
		"button_inactive":  &p.ButtonInactive,
		"button_text":      &p.ButtonText,
		"frame_border":     &p.FrameBorder,
		"frame_fill":       &p.FrameFill,
		"frame_trim":       &p.FrameTrim,
		"section_fill":     &p.SectionFill,
		"backdrop":         &p.Backdrop,
	}
	for name, v := range colors {
		slot, ok := slots[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			rejected = append(rejected, name)
			continue
		}
		c, ok := ParseHexColor(v)
		if !ok {
			rejected = append(rejected, name)
			continue
		}
		*slot = c
	}
	return rejected
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA (alpha 255 unless given).
// Returns black and false on parse error.
func ParseHexColor(s string) (color.RGBA, bool) {
	black := color.RGBA{0, 0, 0, 255}
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return black, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return black, false
		}
	}
	pair := func(i int) uint8 {
		hi, _ := hexByte(hex[i])
		lo, _ := hexByte(hex[i+1])
		return hi<<4 + lo
	}
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		r, _ := hexByte(hex[0])
		g, _ := hexByte(hex[1])
		b, _ := hexByte(hex[2])
		return color.RGBA{r * 17, g * 17, b * 17, 255}, true
	case 6:
		return color.RGBA{pair(0), pair(2), pair(4), 255}, true
	case 8:
		return color.RGBA{pair(0), pair(2), pair(4), pair(6)}, true
	}
	return black, false
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

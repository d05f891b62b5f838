package render

// DefaultColors is the series palette used when none is configured.
var DefaultColors = []string{"#2E90FA"}

// Palette assigns colors to series keys in first-seen order, cycling
// through the colors when there are more keys than colors.
type Palette struct {
	colors []string
	index  map[string]int
	keys   []string
}

// NewPalette returns a palette over colors, or DefaultColors when empty.
func NewPalette(colors ...string) *Palette {
	if len(colors) == 0 {
		colors = DefaultColors
	}
	return &Palette{
		colors: colors,
		index:  make(map[string]int),
	}
}

// Color returns the color of key, assigning the next one on first use.
func (p *Palette) Color(key string) string {
	i, ok := p.index[key]
	if !ok {
		i = len(p.keys)
		p.index[key] = i
		p.keys = append(p.keys, key)
	}
	return p.colors[i%len(p.colors)]
}

// Keys returns the keys seen so far in assignment order.
func (p *Palette) Keys() []string {
	return append([]string(nil), p.keys...)
}

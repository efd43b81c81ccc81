package docflow

// Option is a functional option supplying fallback settings for a render.
// Options fill in whatever the document itself leaves unset; a value written
// in the document always wins.
type Option func(*renderConfig)

type renderConfig struct {
	pageSize   string
	unit       string
	fontFamily string
	fontSize   float64
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		pageSize:   "A4",
		unit:       "mm",
		fontFamily: "Helvetica",
		fontSize:   11,
	}
}

// WithPageSize sets the fallback page size by name.
// Supported: A3, A4, A5, Letter, Legal.
func WithPageSize(size string) Option {
	return func(c *renderConfig) {
		c.pageSize = size
	}
}

// WithUnit sets the fallback measurement unit: mm, cm, in, or pt.
func WithUnit(unit string) Option {
	return func(c *renderConfig) {
		c.unit = unit
	}
}

// WithDefaultFont sets the fallback body font. Size is in points.
func WithDefaultFont(family string, size float64) Option {
	return func(c *renderConfig) {
		if family != "" {
			c.fontFamily = family
		}
		if size > 0 {
			c.fontSize = size
		}
	}
}

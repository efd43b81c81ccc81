// Package content defines the document model consumed by the layout engine.
//
// A document is a flat sequence of content elements. Element is a closed sum:
// every consumer switches over the concrete variants, so adding a new element
// kind is a compile-time-checked change everywhere it matters. The model is
// pure data — parsing lives in the parent package, placement in layout.
package content

// Document is the top-level description of a PDF to be generated.
type Document struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Subject  string `json:"subject,omitempty"`
	PageSize string `json:"pageSize,omitempty"` // A4, Letter, Legal (default: A4)
	Unit     string `json:"unit,omitempty"`     // mm, cm, in, pt (default: mm)

	// Custom page dimensions in the configured unit. When set, both must be
	// positive and they take precedence over PageSize.
	PageWidth  float64 `json:"pageWidth,omitempty"`
	PageHeight float64 `json:"pageHeight,omitempty"`

	Margin    *Margin     `json:"margin,omitempty"`
	Font      *Font       `json:"font,omitempty"` // default font for the document
	Cover     *Cover      `json:"cover,omitempty"`
	TOC       *TOCOptions `json:"toc,omitempty"`
	Header    *Header     `json:"header,omitempty"` // repeated on content pages
	Footer    *Footer     `json:"footer,omitempty"` // repeated on content pages
	Watermark *Watermark  `json:"watermark,omitempty"`

	Content ElementList `json:"content"`
}

// Margin defines page margins in document units.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Font specifies a font face.
type Font struct {
	Family string  `json:"family"` // Helvetica, Courier, Times
	Style  string  `json:"style"`  // "" (regular), "B" (bold), "I" (italic), "BI"
	Size   float64 `json:"size"`
}

// Color is an RGB color.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Cover describes an optional cover page rendered before the content region.
// When present, TOC page numbers are shown relative to the page after it.
type Cover struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Author   string `json:"author,omitempty"`
	Date     string `json:"date,omitempty"`
}

// TOCOptions is the raw, possibly-partial table-of-contents configuration as
// written by the user. Resolution into a fully-defaulted form happens in the
// toc package; pointer fields distinguish "unset" from explicit false.
type TOCOptions struct {
	Enabled         *bool  `json:"enabled,omitempty"`
	Title           string `json:"title,omitempty"`
	MinLevel        int    `json:"minLevel,omitempty"`
	MaxLevel        int    `json:"maxLevel,omitempty"`
	Numbered        *bool  `json:"numbered,omitempty"`
	ShowPageNumbers *bool  `json:"showPageNumbers,omitempty"`
}

// Header defines a line repeated at the top of every content page.
type Header struct {
	Text  string `json:"text,omitempty"`
	Align string `json:"align,omitempty"` // L, C, R
	Font  *Font  `json:"font,omitempty"`
	Color *Color `json:"color,omitempty"`
}

// Footer defines a line repeated at the bottom of every content page.
// Text supports {page} and {pages} placeholders; both expand to
// content-relative numbers that exclude the cover and TOC pages.
type Footer struct {
	Text  string `json:"text,omitempty"`
	Align string `json:"align,omitempty"`
	Font  *Font  `json:"font,omitempty"`
	Color *Color `json:"color,omitempty"`
}

// Watermark overlays rotated text on every generated page.
type Watermark struct {
	Text     string  `json:"text"`
	FontSize float64 `json:"fontSize,omitempty"` // default: 60
	Opacity  float64 `json:"opacity,omitempty"`  // 0.0-1.0, default: 0.3
	Angle    float64 `json:"angle,omitempty"`    // degrees, default: 45
	Color    *Color  `json:"color,omitempty"`    // default: light gray
}

// Element is a single unit of flowed content. It is a sealed interface: only
// the variants in this package implement it.
type Element interface {
	element()
}

// ElementList is an ordered content sequence with a tagged JSON encoding.
type ElementList []Element

// Heading is a section title. Level runs 1 (largest) through 6.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Paragraph is body text, word-wrapped by the layout engine. MaxWidth
// restricts the wrap width and FontSize overrides the document default;
// zero means unset for both.
type Paragraph struct {
	Text     string  `json:"text"`
	MaxWidth float64 `json:"maxWidth,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
}

// TableColumn defines a column in a table element.
type TableColumn struct {
	Header string  `json:"header"`
	Width  float64 `json:"width,omitempty"` // 0 = share remaining space
	Align  string  `json:"align,omitempty"` // L, C, R
}

// Table is a grid of string cells with a repeating header row.
type Table struct {
	Columns []TableColumn `json:"columns"`
	Rows    [][]string    `json:"rows"`
}

// Field kinds supported by the Field element.
const (
	FieldText     = "text"
	FieldCheckbox = "checkbox"
	FieldDropdown = "dropdown"
)

// Field is a flattened form widget: a labeled input box, checkbox, or
// dropdown, drawn in place rather than emitted as an interactive annotation.
type Field struct {
	FieldType   string   `json:"fieldType"` // text, checkbox, dropdown
	Name        string   `json:"fieldName"`
	Label       string   `json:"label,omitempty"`
	Value       string   `json:"value,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"` // dropdown choices
	Multiline   bool     `json:"multiline,omitempty"`
	Required    bool     `json:"required,omitempty"`
}

// Admonition variants.
const (
	AdmonitionNote    = "note"
	AdmonitionTip     = "tip"
	AdmonitionWarning = "warning"
	AdmonitionDanger  = "danger"
)

// Admonition is a callout block with a colored side bar, an optional bold
// title, and wrapped body text. Unknown variants render as a note.
type Admonition struct {
	Variant string `json:"variant"`
	Title   string `json:"title,omitempty"`
	Text    string `json:"text"`
}

// Rule is a full-width horizontal divider.
type Rule struct{}

// Spacer advances the vertical cursor by Height document units.
type Spacer struct {
	Height float64 `json:"height"`
}

// Barcode formats supported by the Barcode element.
const (
	BarcodeQR      = "qr"
	BarcodeCode128 = "code128"
)

// Barcode renders machine-readable data as a QR or Code 128 symbol.
type Barcode struct {
	Format string  `json:"format"` // qr, code128
	Data   string  `json:"data"`
	Width  float64 `json:"width,omitempty"` // document units, 0 = default
}

func (Heading) element()    {}
func (Paragraph) element()  {}
func (Table) element()      {}
func (Field) element()      {}
func (Admonition) element() {}
func (Rule) element()       {}
func (Spacer) element()     {}
func (Barcode) element()    {}

package toc

// Offset describes how TOC insertion shifted the page space. StartPage is
// the number of physical pages before content page 1 (cover plus TOC);
// ContentPageCount is how many pages carry document content.
type Offset struct {
	StartPage        int
	ContentPageCount int
}

// AdjustOffset is the sole sanctioned way to recompute which physical page
// corresponds to "content page 1" after TOC insertion. Header and footer
// rendering must use this rather than re-deriving the shift.
func AdjustOffset(tocPageCount int, hasCover bool, totalPages int) Offset {
	start := tocPageCount
	if hasCover {
		start++
	}
	return Offset{
		StartPage:        start,
		ContentPageCount: totalPages - start,
	}
}

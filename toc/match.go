package toc

import "github.com/lvillar/docflow/layout"

// matchEntryPages resolves each entry's page number against the
// drawn-element record. For every entry, in document order, it takes the
// first not-yet-consumed heading-or-title record whose text equals the
// entry's text and reads its absolute page; when a cover page precedes the
// content the number is converted to a content-relative one by subtracting
// the cover. The search cursor only moves forward, so duplicate heading text
// resolves to successive occurrences rather than always the first.
//
// Known limitation: because the join key is heading text rather than a
// stable identifier, duplicate text across distant same-level sections can
// desynchronize subsequent matches — an entry can consume a record meant for
// a later entry. This mirrors the documented matching behavior and is
// deliberately not guarded against.
//
// An entry with no match defaults to page 1; a missing match is not fatal
// and leaves the cursor where it was.
func matchEntryPages(entries []Entry, drawn []layout.DrawnElement, hasCover bool) {
	offset := 0
	if hasCover {
		offset = 1
	}

	cursor := 0
	for i := range entries {
		entries[i].PageNumber = 1
		for j := cursor; j < len(drawn); j++ {
			d := drawn[j]
			if d.Kind != layout.KindHeading && d.Kind != layout.KindTitle {
				continue
			}
			if d.Text != entries[i].Text {
				continue
			}
			page := d.Page - offset
			if page < 1 {
				page = 1
			}
			entries[i].PageNumber = page
			cursor = j + 1
			break
		}
	}
}

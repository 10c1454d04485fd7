package tables

// pagedMap maps Unicode code points (0..0x10FFFF) to small values (uint8).
// It's a two-level page table:
//   - top[hi] = page index (1..numPages), or 0 meaning "page absent".
//   - pages is a flat array of numPages*256 entries.
//
// Lookup is O(1) with two array reads and a couple of ops.
//
// Memory:
//   - top: 0x1100 * 2 = 8.5 KB
//   - Each populated page: 256 bytes
//
// Styled code points cluster in a few blocks (math alphanumerics, enclosed
// alphanumerics, fullwidth forms, tags), so only a handful of pages are used.
type pagedMap struct {
	top   [0x1100]uint16 // page index (1-based); 0 means none
	pages []uint8        // flat: numPages*256
}

// get returns the value stored for r.
// Returns 0 if absent.
func (m *pagedMap) get(r rune) uint8 {
	if r < 0 || r > 0x10FFFF {
		return 0
	}
	pi := m.top[r>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.pages[base+int(r&0xFF)]
}

// numPages returns the number of allocated pages.
func (m *pagedMap) numPages() int { return len(m.pages) >> 8 }

// ensurePage ensures that the page for high bits hi exists.
// Returns the 1-based page index.
func (m *pagedMap) ensurePage(hi rune) uint16 {
	pi := m.top[hi]
	if pi != 0 {
		return pi
	}
	m.pages = append(m.pages, make([]uint8, 256)...)
	pi = uint16(len(m.pages) >> 8) // number of pages, 1-based index
	m.top[hi] = pi
	return pi
}

// set sets mapping r -> v (v may be 0 to clear).
func (m *pagedMap) set(r rune, v uint8) {
	if r < 0 || r > 0x10FFFF {
		return
	}
	hi := r >> 8
	pi := m.top[hi]
	if pi == 0 {
		if v == 0 {
			return
		}
		pi = m.ensurePage(hi)
	}
	base := int(pi-1) << 8
	m.pages[base+int(r&0xFF)] = v
}

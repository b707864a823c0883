package engine

import (
	"sort"
	"strconv"
	"strings"
)

// ParsePageRange resolves a page-range string into an ascending, deduped set
// of 1-based page numbers. Tokens are comma-separated and either a single
// integer or "start-end"; invalid or out-of-bounds tokens are silently
// dropped. An empty string selects all pages. A reversed range like "2-1"
// selects nothing.
func ParsePageRange(rangeStr string, maxPages int) []int {
	if strings.TrimSpace(rangeStr) == "" {
		all := make([]int, maxPages)
		for i := range all {
			all[i] = i + 1
		}
		return all
	}

	selected := make(map[int]bool)
	for _, part := range strings.Split(rangeStr, ",") {
		part = strings.TrimSpace(part)
		if start, end, ok := strings.Cut(part, "-"); ok {
			lo, err1 := strconv.Atoi(strings.TrimSpace(start))
			hi, err2 := strconv.Atoi(strings.TrimSpace(end))
			if err1 != nil || err2 != nil {
				continue
			}
			for i := lo; i <= hi; i++ {
				if i >= 1 && i <= maxPages {
					selected[i] = true
				}
			}
		} else if num, err := strconv.Atoi(part); err == nil && num >= 1 && num <= maxPages {
			selected[num] = true
		}
	}

	pages := make([]int, 0, len(selected))
	for p := range selected {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

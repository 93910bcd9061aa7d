package record

import "strings"

// PageSize is the fixed number of rows per page.
const PageSize = 10

// Filter keeps records where at least one searchable field (empcode, first
// name, last name, dept, region) contains term, ignoring case. An empty term
// keeps everything. Order is preserved.
func Filter(records []Record, term string) []Record {
	keyword := strings.ToLower(term)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if keyword == "" || r.matches(keyword) {
			out = append(out, r)
		}
	}
	return out
}

func (r Record) matches(keyword string) bool {
	for _, field := range [...]string{string(r.Empcode), r.FirstName, r.LastName, r.Dept, r.Region} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

// TotalPages is ceil(count / pageSize); zero when count is zero.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// PageSlice returns records[(page-1)*pageSize : page*pageSize], clipped to
// the slice bounds. Out of range pages yield an empty slice.
func PageSlice(records []Record, page, pageSize int) []Record {
	// Checked before multiplying so huge pages cannot overflow start.
	if page < 1 || pageSize <= 0 || page > TotalPages(len(records), pageSize) {
		return []Record{}
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// DeriveView filters, counts pages and slices out the current page. It has
// no side effects and can be recomputed at any time.
func DeriveView(records []Record, term string, page, pageSize int) RecordView {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	filtered := Filter(records, term)
	totalPages := TotalPages(len(filtered), pageSize)

	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	return RecordView{
		Records:    PageSlice(filtered, page, pageSize),
		Total:      len(filtered),
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
		Pages:      pages,
	}
}

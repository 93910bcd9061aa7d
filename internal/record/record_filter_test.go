package record_test

import (
	"fmt"
	"math"
	"testing"

	"record-viewer/internal/record"

	"github.com/stretchr/testify/assert"
)

func makeRecords(n int) []record.Record {
	out := make([]record.Record, n)
	for i := range out {
		out[i] = record.Record{
			Empcode:   record.Text(fmt.Sprintf("E%03d", i+1)),
			FirstName: fmt.Sprintf("First%d", i+1),
			LastName:  fmt.Sprintf("Last%d", i+1),
			Dept:      "Ops",
			Region:    "North",
			Branch:    "Main",
		}
	}
	return out
}

func TestFilter(t *testing.T) {
	records := []record.Record{
		{Empcode: "A100", FirstName: "Alice", LastName: "Smith", Dept: "Finance", Region: "West", Branch: "Zeta"},
		{Empcode: "B200", FirstName: "Bob", LastName: "Jones", Dept: "IT", Region: "East", Branch: "Finance Tower"},
		{Empcode: "C300", FirstName: "Carol", LastName: "Finch", Dept: "HR", Region: "North"},
	}

	t.Run("empty term keeps everything in order", func(t *testing.T) {
		got := record.Filter(records, "")
		assert.Equal(t, records, got)
	})

	t.Run("case insensitive match on any searchable field", func(t *testing.T) {
		got := record.Filter(records, "FIN")
		assert.Len(t, got, 2)
		assert.Equal(t, "Alice", got[0].FirstName) // dept
		assert.Equal(t, "Carol", got[1].FirstName) // last name
	})

	t.Run("branch is not searchable", func(t *testing.T) {
		got := record.Filter(records, "tower")
		assert.Empty(t, got)
	})

	t.Run("matches empcode and region", func(t *testing.T) {
		assert.Len(t, record.Filter(records, "b2"), 1)
		assert.Len(t, record.Filter(records, "east"), 1)
	})

	t.Run("no match", func(t *testing.T) {
		got := record.Filter(records, "zzz")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count, want int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{30, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, record.TotalPages(tc.count, record.PageSize), "count=%d", tc.count)
	}
}

func TestPageSlice(t *testing.T) {
	records := makeRecords(25)

	t.Run("first page", func(t *testing.T) {
		got := record.PageSlice(records, 1, 10)
		assert.Equal(t, records[0:10], got)
	})

	t.Run("last partial page", func(t *testing.T) {
		got := record.PageSlice(records, 3, 10)
		assert.Equal(t, records[20:25], got)
	})

	t.Run("out of range", func(t *testing.T) {
		assert.Empty(t, record.PageSlice(records, 4, 10))
		assert.Empty(t, record.PageSlice(records, 0, 10))
		assert.Empty(t, record.PageSlice(records, -1, 10))
	})

	t.Run("huge page does not overflow", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.Empty(t, record.PageSlice(records, math.MaxInt/2+2, 10))
			assert.Empty(t, record.PageSlice(records, math.MaxInt, 10))
		})
	})
}

func TestDeriveView(t *testing.T) {
	t.Run("25 records page 1", func(t *testing.T) {
		view := record.DeriveView(makeRecords(25), "", 1, record.PageSize)

		assert.Len(t, view.Records, 10)
		assert.Equal(t, 25, view.Total)
		assert.Equal(t, 3, view.TotalPages)
		assert.Equal(t, []int{1, 2, 3}, view.Pages)
		assert.Equal(t, 1, view.Page)
	})

	t.Run("no matches", func(t *testing.T) {
		view := record.DeriveView(makeRecords(25), "nobody", 1, record.PageSize)

		assert.Empty(t, view.Records)
		assert.Equal(t, 0, view.TotalPages)
		assert.Empty(t, view.Pages)
	})

	t.Run("filtered then paged", func(t *testing.T) {
		// First1, First10..First19 match "first1"
		view := record.DeriveView(makeRecords(25), "first1", 2, record.PageSize)

		assert.Equal(t, 11, view.Total)
		assert.Equal(t, 2, view.TotalPages)
		assert.Len(t, view.Records, 1)
		assert.Equal(t, "First19", view.Records[0].FirstName)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		records := makeRecords(12)
		before := append([]record.Record(nil), records...)

		_ = record.DeriveView(records, "first", 2, record.PageSize)

		assert.Equal(t, before, records)
	})
}

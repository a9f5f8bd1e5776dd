package pagination

import (
	"testing"
	"yatube/db"

	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestNumPages(t *testing.T) {
	tests := []struct {
		count int64
		want  int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{13, 2},
		{20, 2},
		{21, 3},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, NumPages(tt.count, PageSize), "count %d", tt.count)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		numPages  int
		want      int
	}{
		{"missing", "", 3, 1},
		{"not a number", "abc", 3, 1},
		{"first", "1", 3, 1},
		{"middle", "2", 3, 2},
		{"last", "3", 3, 3},
		{"past the end", "99", 3, 3},
		{"zero", "0", 3, 3},
		{"negative", "-1", 3, 3},
		{"single page", "5", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Number(tt.requested, tt.numPages))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := sequence(13)

	first := Paginate(items, PageSize, "1")
	require.Equal(t, sequence(10), first.Items)
	require.Equal(t, 1, first.Number)
	require.Equal(t, 2, first.NumPages)
	require.EqualValues(t, 13, first.Count)
	require.False(t, first.HasPrevious())
	require.True(t, first.HasNext())
	require.Equal(t, 2, first.NextNumber())

	second := Paginate(items, PageSize, "2")
	require.Equal(t, []int{11, 12, 13}, second.Items)
	require.True(t, second.HasPrevious())
	require.False(t, second.HasNext())
	require.Equal(t, 1, second.PreviousNumber())
	require.Equal(t, []int{1, 2}, second.Range())

	require.Equal(t, second, Paginate(items, PageSize, "99"))
	require.Equal(t, first, Paginate(items, PageSize, "page"))
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate([]int{}, PageSize, "3")
	require.Empty(t, page.Items)
	require.Equal(t, 1, page.Number)
	require.Equal(t, 1, page.NumPages)
	require.False(t, page.HasOtherPages())
}

func TestPaginateSmallPageSize(t *testing.T) {
	items := sequence(13)
	tests := []struct {
		name      string
		pageSize  int
		requested string
		want      []int
		number    int
	}{
		{"zero", 0, "1", items[:1], 1},
		{"negative", -5, "1", items[:1], 1},
		{"negative last page", -5, "13", items[12:], 13},
		{"negative out of range", -5, "99", items[12:], 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page Page[int]
			require.NotPanics(t, func() { page = Paginate(items, tt.pageSize, tt.requested) })
			require.Equal(t, tt.want, page.Items)
			require.Equal(t, tt.number, page.Number)
			require.Equal(t, 13, page.NumPages)
		})
	}
}

type pageRow struct {
	ID uint64 `gorm:"primaryKey"`
	N  int
}

func TestPaginateQuery(t *testing.T) {
	require.NoError(t, db.InitSQLite(":memory:"))
	t.Cleanup(db.Close)
	require.NoError(t, db.Instance.AutoMigrate(&pageRow{}))
	for i := 1; i <= 13; i++ {
		require.NoError(t, db.Instance.Create(&pageRow{N: i}).Error)
	}
	query := db.Instance.Model(&pageRow{}).Order("n DESC")

	tests := []struct {
		requested string
		number    int
		first     int
		size      int
	}{
		{"1", 1, 13, 10},
		{"2", 2, 3, 3},
		{"50", 2, 3, 3},
		{"x", 1, 13, 10},
	}
	for _, tt := range tests {
		page, err := PaginateQuery[pageRow](query, PageSize, tt.requested)
		require.NoError(t, err)
		require.Equal(t, tt.number, page.Number, tt.requested)
		require.EqualValues(t, 13, page.Count)
		require.Len(t, page.Items, tt.size)
		require.Equal(t, tt.first, page.Items[0].N)
	}

	empty, err := PaginateQuery[pageRow](db.Instance.Model(&pageRow{}).Where("n > 100"), PageSize, "2")
	require.NoError(t, err)
	require.NotNil(t, empty.Items)
	require.Empty(t, empty.Items)
	require.Equal(t, 1, empty.NumPages)
}

package pagination

import (
	"reflect"
	"testing"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count, perPage, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
		{35, 5, 7},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.count, tc.perPage); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.count, tc.perPage, got, tc.want)
		}
	}
}

func TestSliceLastPartialPage(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i + 1
	}

	page := Slice(items, 3, 5)
	if len(page) != 2 {
		t.Fatalf("expected 2 items on page 3 of 12, got %d", len(page))
	}
	if page[0] != 11 || page[1] != 12 {
		t.Fatalf("expected items 11 and 12, got %v", page)
	}
}

func TestSliceBeyondEndIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}
	if page := Slice(items, 5, 5); len(page) != 0 {
		t.Fatalf("expected empty slice past the end, got %v", page)
	}
}

func TestChangePageRejectsOutOfBounds(t *testing.T) {
	cursor := NewCursor(5)

	if cursor.ChangePage(0, 3) {
		t.Fatal("page 0 must be rejected")
	}
	if cursor.ChangePage(4, 3) {
		t.Fatal("page past the end must be rejected")
	}
	if cursor.CurrentPage() != 1 {
		t.Fatalf("rejected requests must leave the cursor unchanged, got %d", cursor.CurrentPage())
	}

	if !cursor.ChangePage(3, 3) {
		t.Fatal("page 3 of 3 must be accepted")
	}
	if cursor.CurrentPage() != 3 {
		t.Fatalf("expected page 3, got %d", cursor.CurrentPage())
	}
}

func TestClampAfterShrink(t *testing.T) {
	cursor := NewCursor(5)
	cursor.ChangePage(3, 3)

	cursor.Clamp(2)
	if cursor.CurrentPage() != 2 {
		t.Fatalf("expected clamp to page 2, got %d", cursor.CurrentPage())
	}

	cursor.Clamp(2)
	if cursor.CurrentPage() != 2 {
		t.Fatalf("clamp within bounds must not move the cursor, got %d", cursor.CurrentPage())
	}
}

func TestWindowSmallTotal(t *testing.T) {
	got := Window(4, 2)
	want := []string{"1", "2", "3", "4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Window(4, 2) = %v, want %v", got, want)
	}
}

func TestWindowMiddleOfLargeTotal(t *testing.T) {
	got := Window(10, 5)
	want := []string{"1", "...", "3", "4", "5", "6", "7", "...", "10"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Window(10, 5) = %v, want %v", got, want)
	}
}

func TestWindowNearEdges(t *testing.T) {
	got := Window(10, 1)
	want := []string{"1", "2", "3", "...", "10"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Window(10, 1) = %v, want %v", got, want)
	}

	got = Window(10, 10)
	want = []string{"1", "...", "8", "9", "10"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Window(10, 10) = %v, want %v", got, want)
	}
}

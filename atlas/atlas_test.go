package atlas

import (
	"image"
	"testing"
)

func TestFromGrid(t *testing.T) {
	sheet := image.NewRGBA(image.Rect(0, 0, 576, 256))
	a, err := FromGrid("walk", sheet, 9, 4)
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	if a.Len() != 36 || a.CellW != 64 || a.CellH != 64 {
		t.Fatalf("unexpected atlas %d cells %dx%d", a.Len(), a.CellW, a.CellH)
	}

	tests := []struct {
		name  string
		index int
		want  image.Rectangle
		ok    bool
	}{
		{"first", 0, image.Rect(0, 0, 64, 64), true},
		{"end_of_up_row", 8, image.Rect(512, 0, 576, 64), true},
		{"start_of_left_row", 9, image.Rect(0, 64, 64, 128), true},
		{"down_base", 18, image.Rect(0, 128, 64, 192), true},
		{"last", 35, image.Rect(512, 192, 576, 256), true},
		{"past_end", 36, image.Rectangle{}, false},
		{"negative", -1, image.Rectangle{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := a.Frame(tc.index)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Frame(%d) = %v, %v; want %v, %v", tc.index, got, ok, tc.want, tc.ok)
			}
		})
	}
	if a.Row(3) != 27 {
		t.Fatalf("expected row 3 to start at 27, got %d", a.Row(3))
	}
}

func TestFromGridOffsetBounds(t *testing.T) {
	sheet := image.NewRGBA(image.Rect(10, 20, 30, 60))
	a, err := FromGrid("offset", sheet, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := a.Frame(3)
	if want := image.Rect(20, 40, 30, 60); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFromGridErrors(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 4, 4))
	tests := []struct {
		name       string
		img        image.Image
		cols, rows int
	}{
		{"nil_image", nil, 9, 4},
		{"zero_cols", small, 0, 4},
		{"too_small", small, 9, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromGrid(tc.name, tc.img, tc.cols, tc.rows); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

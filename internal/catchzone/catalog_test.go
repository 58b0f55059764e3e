package catchzone

import (
	"testing"

	"github.com/vovakirdan/catch-zone/internal/config"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(config.Default().Items)
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}

	kinds := c.Kinds()
	if len(kinds) != 4 {
		t.Fatalf("Expected 4 kinds, got %d", len(kinds))
	}
	if !kinds[3].Hazard {
		t.Errorf("Expected hazard last, got %+v", kinds[3])
	}
	if c.Hazard().Name != "bomb" || c.Hazard().Score != 0 {
		t.Errorf("Unexpected hazard %+v", c.Hazard())
	}

	apple, ok := c.Lookup("apple")
	if !ok || apple.Score != 100 {
		t.Errorf("Lookup(apple) = %+v, %v", apple, ok)
	}
	if _, ok := c.Lookup("kiwi"); ok {
		t.Error("Lookup(kiwi) should fail")
	}
}

func TestNewCatalogErrors(t *testing.T) {
	tests := []struct {
		name  string
		items []config.ItemConfig
	}{
		{"empty", nil},
		{"no hazard", []config.ItemConfig{{Name: "apple", Score: 100}}},
		{"two hazards", []config.ItemConfig{
			{Name: "apple", Score: 100},
			{Name: "bomb", Hazard: true},
			{Name: "mine", Hazard: true},
		}},
		{"only hazard", []config.ItemConfig{{Name: "bomb", Hazard: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.items); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestCatalogPick(t *testing.T) {
	c, err := NewCatalog(config.Default().Items)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		draws []float64
		want  string
	}{
		{[]float64{0.05}, "bomb"},
		{[]float64{0.0999}, "bomb"},
		{[]float64{0.1, 0.0}, "apple"},
		{[]float64{0.5, 0.34}, "pear"},
		{[]float64{0.9, 0.99}, "orange"},
	}

	for _, tt := range tests {
		got := c.Pick(&seqRand{vals: tt.draws}, 0.1)
		if got.Name != tt.want {
			t.Errorf("Pick(%v) = %s, want %s", tt.draws, got.Name, tt.want)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		r    float64
		n    int
		want int
	}{
		{0, 3, 0},
		{0.33, 3, 0},
		{0.34, 3, 1},
		{0.67, 3, 2},
		{0.999999, 3, 2},
		{1, 3, 2},
		{-0.1, 3, 0},
	}

	for _, tt := range tests {
		if got := index(tt.r, tt.n); got != tt.want {
			t.Errorf("index(%v, %d) = %d, want %d", tt.r, tt.n, got, tt.want)
		}
	}
}

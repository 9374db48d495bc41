package life

import "testing"

func TestBlinkerOscillation(t *testing.T) {
	g := New(5, 5)
	set := func(x, y int) {
		if err := g.SetAlive(x, y, true); err != nil {
			t.Fatal(err)
		}
	}
	set(1, 2)
	set(2, 2)
	set(3, 2)

	g.Step()

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			s, _ := g.State(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != s.IsAlive() {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, s.IsAlive(), shouldBeAlive)
			}
		}
	}

	g.Step()

	expects = map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			s, _ := g.State(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != s.IsAlive() {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, s.IsAlive(), shouldBeAlive)
			}
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	g := New(6, 6)
	g.PlacePattern("block", 2, 2)
	before := g.Clone()

	g.Step()

	if !g.Equal(before) {
		t.Fatal("block changed after one generation")
	}
	if got := g.CountLivingCells(); got != 4 {
		t.Fatalf("expected 4 living cells, got %d", got)
	}
}

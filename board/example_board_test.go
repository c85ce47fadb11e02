package board_test

import (
	"fmt"

	"github.com/plus3/tilematch/board"
)

// ExampleBoard walks through one interaction: three tiles forming a set are
// marked, the match removes them, and gravity drops the tiles above.
func ExampleBoard() {
	b := board.New(3, 3)
	b.Observe(board.ObserverFunc(func(ev board.Event) {
		if ev.Kind == board.TileMoved {
			fmt.Printf("%s %s -> %s\n", ev.Kind, ev.From, ev.Position)
		}
	}))

	b.CreateTile(board.Position{X: 0, Y: 0}, board.Blue, board.Diamond)
	b.CreateTile(board.Position{X: 1, Y: 0}, board.Blue, board.Circle)
	b.CreateTile(board.Position{X: 2, Y: 0}, board.Blue, board.Triangle)
	b.CreateTile(board.Position{X: 1, Y: 1}, board.Red, board.Circle)

	for x := range 3 {
		b.Mark(board.Position{X: x, Y: 0})
	}
	fmt.Print(b)

	res := b.EvaluateMatch()
	fmt.Println("matched:", res.Matched, "destroyed:", len(res.Destroyed))

	b.ApplyGravity()
	fmt.Print(b)

	// Output:
	// .. .. ..
	// .. Ro ..
	// BD BO BT
	// matched: true destroyed: 3
	// moved (1,1) -> (1,0)
	// .. .. ..
	// .. .. ..
	// .. Ro ..
}

// ExampleIsMatch shows the all-same-or-all-different rule.
func ExampleIsMatch() {
	set := []board.Tile{
		{Color: board.Blue, Shape: board.Diamond},
		{Color: board.Red, Shape: board.Circle},
		{Color: board.Yellow, Shape: board.Triangle},
	}
	fmt.Println(board.IsMatch(set))

	set[1].Color = board.Blue
	fmt.Println(board.IsMatch(set))

	// Output:
	// true
	// false
}

package ladder_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

// ExampleFind builds the classic cat → dog ladder over a tiny dictionary.
func ExampleFind() {
	dict := dictionary.New("cat", "cot", "cog", "dog", "bat", "bag")

	res, err := ladder.Find("cat", "dog", dict)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Ladder)
	fmt.Println("length:", res.Ladder.Len())
	// Output:
	// cat -> cot -> cog -> dog
	// length: 4
}

// ExampleFind_noLadder separates "no ladder" from invalid input.
func ExampleFind_noLadder() {
	dict := dictionary.New("cat", "cot", "xylophone")

	_, err := ladder.Find("cat", "xylophone", dict)
	fmt.Println(errors.Is(err, ladder.ErrNoLadder))

	_, err = ladder.Find("cat", "cat", dict)
	fmt.Println(errors.Is(err, ladder.ErrInvalidInput))
	fmt.Println(err)
	// Output:
	// true
	// true
	// ladder: invalid input: Start and end words are the same (cat, cat)
}

// ExampleFindAll runs several queries on a bounded worker pool.
func ExampleFindAll() {
	dict := dictionary.New("cat", "cot", "cog", "dog", "at", "a")
	pairs := []ladder.Pair{{Start: "cat", End: "dog"}, {Start: "dog", End: "a"}}

	for _, o := range ladder.FindAll(context.Background(), dict, pairs, 2, ladder.WithStrategy(ladder.Scan{})) {
		fmt.Printf("%s->%s: %v\n", o.Start, o.End, o.Result.Ladder)
	}
	// Output:
	// cat->dog: cat -> cot -> cog -> dog
	// dog->a: dog -> cog -> cot -> cat -> at -> a
}

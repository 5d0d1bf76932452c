package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"shogi/internal/shogi"
)

func main() {
	diagramPath := flag.String("pos", "", "board diagram file (defaults to the initial position)")
	flag.Parse()

	pos := shogi.NewInitialPosition()
	if *diagramPath != "" {
		text, err := os.ReadFile(*diagramPath)
		if err != nil {
			log.Fatal(err)
		}
		pos, err = shogi.DecodePosition(string(text))
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Print(pos.Encode())
	moves := pos.GenerateMoves()
	fmt.Println("moves:", len(moves))
	for _, m := range moves {
		fmt.Println(" ", m)
	}
}

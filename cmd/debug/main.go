package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"varchess/internal/varchess"
)

func main() {
	setupPath := flag.String("setup", "", "file holding an encoded position (default: standard start)")
	anywhere := flag.Bool("anywhere", false, "list any-destination candidates instead of the rules")
	flag.Parse()

	s := varchess.NewStandardSession()
	if *setupPath != "" {
		raw, err := os.ReadFile(*setupPath)
		if err != nil {
			log.Fatalf("read setup: %v", err)
		}
		s, err = varchess.DecodeSession(strings.TrimSpace(string(raw)))
		if err != nil {
			log.Fatalf("decode setup: %v", err)
		}
	}
	s.AnyDestination = *anywhere

	fmt.Println("Position:", s.Encode())
	fmt.Printf("Hash: %016x\n", s.Hash())

	total := 0
	s.Grid().Each(func(l varchess.Loc, sq *varchess.Square) {
		pc := sq.Piece()
		if pc.Side != s.Turn() {
			return
		}
		moves := s.Moves(pc)
		total += len(moves)
		dests := make([]string, len(moves))
		for i, m := range moves {
			dests[i] = m.To.String()
			if m.Tag != varchess.TagNone {
				dests[i] += "/" + m.Tag.String()
			}
		}
		fmt.Printf("%-6s %v: %s\n", pc.Kind, l, strings.Join(dests, " "))
	})
	fmt.Println("Candidate moves:", total)
}

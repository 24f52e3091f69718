package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"

	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", "", "position to inspect, defaults to the opening setup")
	flag.Parse()

	log.SetHandler(text.New(os.Stderr))

	pos := xiangqi.NewInitialPosition()
	if *fen != "" {
		p, err := xiangqi.DecodePosition(*fen)
		if err != nil {
			log.WithError(err).Fatal("decode position")
		}
		pos = p
	}

	fmt.Print(pos.Board.String())
	fmt.Println("FEN:", pos.Encode())
	fmt.Println("Side to move:", pos.SideToMove)
	fmt.Println("Legal moves:", len(pos.LegalMoves()))
	fmt.Println("Status:", pos.ClassifyStatus(pos.SideToMove))

	if cs := pos.CheckStatus(pos.SideToMove); cs.InCheck {
		for _, sq := range cs.Attackers {
			fmt.Println("Checked from:", xiangqi.SquareName(sq))
		}
	}
}

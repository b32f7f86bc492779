// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/K16858/mctschess/pkg/board"
	"github.com/K16858/mctschess/pkg/board/fen"
	"github.com/K16858/mctschess/pkg/engineinfo"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	pos, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	logw.Infof(ctx, "perft %v (engine %v)", *position, engineinfo.Version)

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := board.Perft(pos, i)
		duration := time.Since(start)

		logw.Infof(ctx, "perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds())
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"time"

	"shogi/internal/explore"
	"shogi/internal/shogi"
)

func main() {
	depth := flag.Int("depth", 4, "maximum depth to explore")
	workers := flag.Int("workers", 0, "worker goroutines (0 = one per CPU)")
	diagramPath := flag.String("pos", "", "board diagram file (defaults to the initial position)")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println("pprof listening on", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for d := 0; d <= *depth; d++ {
		start := time.Now()
		n, err := explore.CountParallel(ctx, pos, d, *workers)
		if err != nil {
			log.Fatalf("explore stopped: %v", err)
		}
		dur := time.Since(start)
		nps := int64(0)
		if dur > 0 {
			nps = int64(float64(n) / dur.Seconds())
		}
		fmt.Printf("depth %d: %d leaves, %v, %d leaves/s\n", d, n, dur, nps)
	}
}

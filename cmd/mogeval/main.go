package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/steiner24/mog/internal/errsim"
	"github.com/steiner24/mog/mog"
)

// Exhaustively checks the Steiner property over all 42504 five-point
// subsets, then runs a Monte Carlo decoder sweep under random bit flips.

type steinerAgg struct {
	subsets int
	octads  map[mog.Codeword]int
}

func runSteiner(workers int) (steinerAgg, error) {
	agg := steinerAgg{octads: make(map[mog.Codeword]int)}
	var mu sync.Mutex
	var eg errgroup.Group
	eg.SetLimit(workers)
	// Shard on the smallest point of the subset.
	for a := mog.Point(0); a < mog.NumPoints; a++ {
		a := a
		eg.Go(func() error {
			local := make(map[mog.Codeword]int)
			n := 0
			for b := a + 1; b < mog.NumPoints; b++ {
				for c := b + 1; c < mog.NumPoints; c++ {
					for d := c + 1; d < mog.NumPoints; d++ {
						for e := d + 1; e < mog.NumPoints; e++ {
							sel := mog.WordFromPoints(a, b, c, d, e)
							oct, err := mog.CompleteOctad(sel)
							if err != nil {
								return fmt.Errorf("subset %#x: %w", sel, err)
							}
							if oct.Weight() != 8 || !oct.Contains(sel) {
								return fmt.Errorf("subset %#x: bad octad %#x", sel, oct)
							}
							local[oct]++
							n++
						}
					}
				}
			}
			mu.Lock()
			for k, v := range local {
				agg.octads[k] += v
			}
			agg.subsets += n
			mu.Unlock()
			return nil
		})
	}
	err := eg.Wait()
	return agg, err
}

type decodeAgg struct {
	trials    int
	recovered int
	flipSum   int
}

func runDecode(trials int, ploss float64, seed int64, workers int) decodeAgg {
	var agg decodeAgg
	var mu sync.Mutex
	var eg errgroup.Group
	eg.SetLimit(workers)
	per := (trials + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(w)))
			flip := errsim.New(ploss, rng)
			var local decodeAgg
			for i := 0; i < per; i++ {
				sent := mog.Encode(uint16(rng.Intn(1 << mog.DataBits)))
				e := flip.Pattern()
				got, flips := (sent ^ e).Decode()
				local.trials++
				local.flipSum += len(flips)
				if got == sent {
					local.recovered++
				} else if e.Weight() <= 3 {
					// Within the correction radius every miss is a bug.
					log.Fatal().
						Uint32("sent", uint32(sent)).
						Uint32("error", uint32(e)).
						Uint32("got", uint32(got)).
						Msg("decoder missed inside radius")
				}
			}
			mu.Lock()
			agg.trials += local.trials
			agg.recovered += local.recovered
			agg.flipSum += local.flipSum
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()
	return agg
}

func main() {
	var (
		trials  int
		ploss   float64
		seed    int64
		csvPath string
		workers int
	)
	flag.IntVar(&trials, "trials", 100000, "decode trials")
	flag.Float64Var(&ploss, "ploss", 0.05, "per-point flip probability")
	flag.Int64Var(&seed, "seed", 12345, "random seed")
	flag.StringVar(&csvPath, "csv", "", "optional CSV summary path (appends)")
	flag.IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "parallel workers")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	tSteiner := time.Now()
	agg, err := runSteiner(workers)
	if err != nil {
		log.Fatal().Err(err).Msg("steiner sweep failed")
	}
	steinerDur := time.Since(tSteiner)
	log.Info().
		Int("subsets", agg.subsets).
		Int("octads", len(agg.octads)).
		Dur("elapsed", steinerDur).
		Msg("steiner sweep done")
	if len(agg.octads) != 759 {
		log.Fatal().Int("octads", len(agg.octads)).Msg("expected 759 octads")
	}
	for oct, n := range agg.octads {
		// Each octad holds C(8,5)=56 five-point subsets.
		if n != 56 {
			log.Fatal().Uint32("octad", uint32(oct)).Int("count", n).Msg("uneven subset count")
		}
	}

	tDec := time.Now()
	dec := runDecode(trials, ploss, seed, workers)
	decDur := time.Since(tDec)
	okRate := float64(dec.recovered) / float64(dec.trials)
	avgFlips := float64(dec.flipSum) / float64(dec.trials)

	fmt.Printf("MOG decode: p=%.3f trials=%d ok=%d ok_rate=%.4f avg_flips=%.3f | t_steiner=%v t_dec=%v\n",
		ploss, dec.trials, dec.recovered, okRate, avgFlips, steinerDur, decDur)

	if csvPath != "" {
		f, err := os.OpenFile(csvPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal().Err(err).Msg("csv open")
		}
		defer f.Close()
		w := csv.NewWriter(bufio.NewWriter(f))
		if fi, _ := f.Stat(); fi.Size() == 0 {
			_ = w.Write([]string{"date", "ploss", "trials", "ok_rate", "avg_flips", "t_steiner_ms", "t_decode_ms", "seed"})
		}
		_ = w.Write([]string{
			time.Now().Format(time.RFC3339),
			fmt.Sprintf("%.4f", ploss),
			fmt.Sprintf("%d", dec.trials),
			fmt.Sprintf("%.6f", okRate),
			fmt.Sprintf("%.4f", avgFlips),
			fmt.Sprintf("%d", steinerDur.Milliseconds()),
			fmt.Sprintf("%d", decDur.Milliseconds()),
			fmt.Sprintf("%d", seed),
		})
		w.Flush()
	}
}

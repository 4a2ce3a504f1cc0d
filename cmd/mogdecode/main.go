package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/steiner24/mog/mog"
)

// Decodes or completes a single grid from the command line and prints the
// result as the 4x6 MOG diagram.

func parseVector(hexStr, pointsStr string) (mog.Codeword, error) {
	if hexStr != "" {
		v, err := strconv.ParseUint(strings.TrimPrefix(hexStr, "0x"), 16, 32)
		if err != nil {
			return 0, fmt.Errorf("vector %q: %w", hexStr, err)
		}
		if v >= 1<<mog.NumPoints {
			return 0, fmt.Errorf("vector %#x exceeds 24 bits", v)
		}
		return mog.Codeword(v), nil
	}
	var c mog.Codeword
	for _, s := range strings.Split(pointsStr, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("point %q: %w", s, err)
		}
		p := mog.Point(n)
		if !p.Valid() {
			return 0, fmt.Errorf("point %d out of range", n)
		}
		c = c.Set(p)
	}
	return c, nil
}

func main() {
	var (
		hexStr    string
		pointsStr string
		op        string
		gens      string
	)
	flag.StringVar(&hexStr, "vector", "", "24-bit vector as hex, e.g. 0x82081f")
	flag.StringVar(&pointsStr, "points", "", "comma-separated point indices 0-23")
	flag.StringVar(&op, "op", "decode", "operation: decode|octad|sextet|check")
	flag.StringVar(&gens, "generators", "", "comma-separated generator names applied first, e.g. g1,g4")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	v, err := parseVector(hexStr, pointsStr)
	if err != nil {
		log.Fatal().Err(err).Msg("bad input")
	}
	if gens != "" {
		for _, name := range strings.Split(gens, ",") {
			g, err := mog.Generator(strings.TrimSpace(name))
			if err != nil {
				log.Fatal().Err(err).Str("generator", name).Msg("bad generator")
			}
			v = g.ApplyWord(v)
		}
	}

	fmt.Printf("input (%d points):\n%v\n", v.Weight(), v)
	switch op {
	case "decode":
		cw, flips := v.Decode()
		fmt.Printf("nearest codeword %#06x, %d flips %v:\n%v", uint32(cw), len(flips), flips, cw)
	case "octad":
		oct, err := mog.CompleteOctad(v)
		if err != nil {
			log.Fatal().Err(err).Msg("no completion")
		}
		fmt.Printf("octad %#06x:\n%v", uint32(oct), oct)
	case "sextet":
		s, err := mog.CompleteSextet(v)
		if err != nil {
			log.Fatal().Err(err).Msg("no completion")
		}
		for i, tet := range s {
			fmt.Printf("tetrad %d: %v\n", i, tet.Points())
		}
	case "check":
		fmt.Printf("codeword: %t\n", v.IsCodeword())
	default:
		log.Fatal().Str("op", op).Msg("unknown operation")
	}
}

// Command heapreplay runs a TOML operation script against a binomial or
// Fibonacci heap and prints every peek and dump the script asks for.
//
// Usage:
//
//	heapreplay -f script.toml [-kind binomial|fibonacci] [-v]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/heapforest/internal/replay"
)

type cmdOptions struct {
	Script  string
	Kind    string
	Verbose bool
}

func parseArguments() cmdOptions {
	var opts cmdOptions

	flag.Usage = help
	flag.StringVar(&opts.Script, "f", "", "Script file")
	flag.StringVar(&opts.Kind, "kind", "", "Override the script's heap kind")
	flag.BoolVar(&opts.Verbose, "v", false, "Log every failed step")
	helpPtr := flag.Bool("h", false, "You're looking at it")
	flag.Parse()

	if *helpPtr {
		help()
		os.Exit(0)
	}
	if opts.Script == "" {
		help()
		os.Exit(2)
	}

	return opts
}

func help() {
	log.Println("heapreplay -f [script] [-kind binomial|fibonacci] [-v]")
	log.Println("-f [script]\tTOML script to replay (required)")
	log.Println("-kind [kind]\tOverride the heap kind named in the script")
	log.Println("-v\t\tLog every failed step")
	log.Println("-h\t\tThis help screen")
}

func main() {
	log.SetFlags(0)
	opts := parseArguments()

	s, err := replay.LoadFile(opts.Script)
	if err != nil {
		log.Fatalf("Unable to load %s: %v", opts.Script, err)
	}
	if opts.Kind != "" {
		s.Kind = opts.Kind
	}

	h, err := replay.NewHeap(s.Kind, s.Options)
	if err != nil {
		log.Fatal(err)
	}

	res, err := replay.Run(h, s, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if opts.Verbose {
		for _, f := range res.Failures {
			log.Println(f)
		}
	}
	log.Printf("%s: %d steps, %d failed, %d elements left", s.Kind, res.Steps, len(res.Failures), res.Len)
}

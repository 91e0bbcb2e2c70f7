package main

// Offline check of the regex stage:
//   go run ./cmd/titlecheck "Oppenheimer.2023.1080p.BluRay.x264-YTS"
//   cat titles.txt | go run ./cmd/titlecheck

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"titleparser-backend/internal/titles"
)

func main() {
	pretty := flag.Bool("pretty", false, "Indent JSON output")
	showRemaining := flag.Bool("remaining", false, "Include regex leftovers in output")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			exitErr(fmt.Sprintf("read stdin: %v", err))
		}
	}
	if len(inputs) == 0 {
		exitErr("no titles given on args or stdin")
	}

	encoder := json.NewEncoder(os.Stdout)
	if *pretty {
		encoder.SetIndent("", "  ")
	}
	for _, raw := range inputs {
		res, remaining := titles.Extract(raw)
		if titles.NeedsRefinement(remaining, res, titles.Hints{}) {
			res = titles.MergeFallback(res, remaining, titles.NoteLLMDisabled)
		} else {
			res = titles.MergeHeuristic(res, remaining)
		}

		var payload any = res
		if *showRemaining {
			payload = struct {
				titles.Result
				Remaining string `json:"remaining"`
			}{Result: res, Remaining: remaining}
		}
		if err := encoder.Encode(payload); err != nil {
			exitErr(fmt.Sprintf("encode result: %v", err))
		}
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
	os.Exit(1)
}

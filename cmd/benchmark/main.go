package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Acidburn0zzz/jwordsplitter/pkg/splitter"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	dictPath := "dictionaries/de_compound_parts.txt"
	if len(os.Args) > 1 {
		dictPath = os.Args[1]
	}

	// Load splitter
	fmt.Print("Loading German compound part dictionary... ")
	start := time.Now()
	s, err := splitter.NewGermanSplitter(dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()
	lex := s.Lexicon()
	fmt.Printf("done (%d words in %v)\n", lex.WordCount(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Test data
	simpleWord := "Haus"
	compound := "Wasserkraftwerk"
	interfixed := "Erhebungsfehler"
	unsplittable := "Xylophonzq"

	// Split throughput
	printHeader("SPLIT THROUGHPUT")
	bench("Simple word", func() { s.SplitWord(simpleWord) })
	bench("Compound (3 parts)", func() { s.SplitWord(compound) })
	bench("Compound (interfix)", func() { s.SplitWord(interfixed) })
	bench("Unsplittable word", func() { s.SplitWord(unsplittable) })
	printFooter()
	fmt.Println()

	// Component breakdown
	printHeader("COMPONENT BREAKDOWN")

	bench("Lexicon lookup", func() {
		lex.Contains("wasser")
	})

	bench("Connector strip", func() {
		lex.StripConnector("erhebungs")
	})

	s.ClearCache()
	s.SplitWord(compound)
	bench("Split (cache hit)", func() {
		s.SplitWord(compound)
	})

	bench("Split (cache miss)", func() {
		s.ClearCache()
		s.SplitWord(compound)
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	// Now colorize the padded string
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	// Calculate how much padding we added
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}

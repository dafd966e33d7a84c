package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Acidburn0zzz/jwordsplitter/internal/logger"
	"github.com/Acidburn0zzz/jwordsplitter/pkg/config"
	"github.com/Acidburn0zzz/jwordsplitter/pkg/splitter"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	dictPath := flag.String("dict", "", "path to the dictionary file (overrides config)")
	strict := flag.Bool("strict", false, "only split when every part is a dictionary word")
	showConnectors := flag.Bool("show-connectors", false, "keep connecting characters in emitted parts")
	debug := flag.Bool("d", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	logg := logger.New("split")

	cfg, _, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		logg.Fatal("Failed to load config", "err", err)
	}
	if *dictPath != "" {
		cfg.Lexicon.Path = *dictPath
	}
	if *strict {
		cfg.Splitter.StrictMode = true
	}
	if *showConnectors {
		cfg.Splitter.HideConnectingCharacters = false
	}

	lex, err := splitter.NewLexicon(cfg.Lexicon.Path,
		splitter.WithMinWordLength(cfg.Lexicon.MinWordLength),
		splitter.WithConnectingCharacters(cfg.Lexicon.ConnectingCharacters...),
	)
	if err != nil {
		logg.Fatal("Failed to load dictionary", "path", cfg.Lexicon.Path, "err", err)
	}
	defer lex.Close()

	s := splitter.NewSplitter(lex, splitter.Config{
		HideConnectingCharacters: cfg.Splitter.HideConnectingCharacters,
		StrictMode:               cfg.Splitter.StrictMode,
		Cache:                    cfg.Splitter.Cache,
	})

	// Words given as arguments: split each and exit.
	if flag.NArg() > 0 {
		for _, word := range flag.Args() {
			output, _ := json.Marshal(s.SplitWord(word))
			fmt.Println(string(output))
		}
		return
	}

	// Interactive mode
	fmt.Println("Compound word splitter (interactive mode)")
	fmt.Printf("Dictionary loaded: %d words\n", lex.WordCount())
	fmt.Println("Type a word, press Enter to split. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		for _, word := range strings.Fields(line) {
			output, _ := json.Marshal(s.SplitWord(word))
			fmt.Printf("  %s -> %s\n", word, output)
		}
		fmt.Println()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: split [flags] [word...]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Splits compound words into their dictionary parts. With word")
	fmt.Fprintln(os.Stderr, "arguments, prints one JSON array per word; without, starts an")
	fmt.Fprintln(os.Stderr, "interactive prompt.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

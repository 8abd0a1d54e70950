// Command builder reads a newline-delimited word list and writes a
// packed Dawg file.
package main

import (
	"bufio"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/milden6/subdawg"
	"github.com/milden6/subdawg/internal/config"
	"github.com/milden6/subdawg/internal/slogerr"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		slog.Error("usage: builder <wordlist> <out.dawg>")
		os.Exit(2)
	}
	wordlistPath, outPath := args[0], args[1]

	cfg := config.MustLoad()
	log := setupLogger(cfg.LogFormat, verbose)

	log.Info("building dawg", "wordlist", wordlistPath, "out", outPath)

	b, err := buildFromWordlist(wordlistPath)
	if err != nil {
		log.Error("failed to read word list", slogerr.Err(err))
		os.Exit(1)
	}

	start := time.Now()
	d, stats := b.Build()
	defer d.Close()

	log.Info("minimized",
		"words", stats.WordCount,
		"trie_nodes", stats.TrieNodes,
		"packed_nodes", stats.PackedNodes,
		"elapsed", time.Since(start),
	)

	if err := d.StoreFile(outPath); err != nil {
		log.Error("failed to write dawg file", slogerr.Err(err))
		os.Exit(1)
	}

	log.Info("wrote dawg file", "path", outPath)
}

func buildFromWordlist(path string) (*dawg.Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b := dawg.NewBuilder()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		b.Add(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func setupLogger(format string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

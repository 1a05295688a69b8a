// Copyright 2026 The WordSieve Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the distracter filter server and CLI [DBG] application.

WordSieve decides whether a typed word is a distracter: a near-miss of a
word already known to a locale's dictionary, close enough in typing
proximity that learning it into an adaptive vocabulary would pollute the
vocabulary with typos. It can operate as a MessagePack IPC server for
integration with input engines, or as a CLI application for testing and
debugging.

# Usage

Start the server with default settings:

	wsieve -locales en-US

Use a custom data directory and enable debug mode:

	wsieve -data /path/to/dicts -locales en-US,fr-FR -d

Run in CLI mode for interactive testing against one locale:

	wsieve -c -locale en-US

The data directory holds one subdirectory per locale ("en_US", "fr_FR")
containing chunked binary files named dict_0001.bin, dict_0002.bin, or a
plain words.txt, plus optional bigrams.txt and offensive.txt files.

# Configuration

Runtime configuration is managed through a TOML file:

	[dict]
	data_dir = "data"
	load_timeout_secs = 120

	[distracter]
	score_threshold = 2.0
	suggestion_timeout_ms = 200

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Send a verdict
request:

	{"id": "req1", "cmd": "check", "w": "teh", "l": "en-US"}

Receive the verdict with timing information:

	{"id": "req1", "d": true, "t": 1843}

# Registrations

Each -locales entry registers one enabled subtype. An entry may pin a
layout with a colon suffix ("fr-FR:azerty"); otherwise the language's
conventional layout is used. When two entries name the same locale the
first one wins and later ones are ignored.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordsieve/wordsieve/internal/logger"
	"github.com/wordsieve/wordsieve/internal/utils"
	"github.com/wordsieve/wordsieve/pkg/config"
	"github.com/wordsieve/wordsieve/pkg/dictionary"
	"github.com/wordsieve/wordsieve/pkg/distracter"
	"github.com/wordsieve/wordsieve/pkg/keyboard"
	"github.com/wordsieve/wordsieve/pkg/server"
	"github.com/wordsieve/wordsieve/pkg/suggest"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config.toml")
		dataDir    = flag.String("data", "", "directory containing per-locale dictionary data")
		locales    = flag.String("locales", "en-US", "comma-separated locale registrations, e.g. en-US,fr-FR:azerty")
		cliMode    = flag.Bool("c", false, "run in interactive CLI mode")
		cliLocale  = flag.String("locale", "en-US", "locale to query in CLI mode")
		debug      = flag.Bool("d", false, "enable debug logging")
	)
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	if activePath != "" {
		log.Debugf("Config: %s", activePath)
	}
	if *dataDir != "" {
		cfg.Dict.DataDir = *dataDir
	}
	log.Debugf("Using data dir at: %s", utils.GetAbsolutePath(cfg.Dict.DataDir))

	subtypes := parseRegistrations(*locales)
	if len(subtypes) == 0 {
		log.Warn("No locales registered; every query will answer false")
	}

	filter := distracter.New(cfg, subtypes)

	if *cliMode {
		if err := runCLI(filter, dictionary.ParseLocale(*cliLocale)); err != nil {
			log.Fatalf("CLI: %v", err)
		}
		return
	}

	srv := server.NewServer(filter, cfg.Server.MaxWordLength)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server: %v", err)
	}
}

// parseRegistrations turns "en-US,fr-FR:azerty" into subtypes.
func parseRegistrations(spec string) []keyboard.Subtype {
	var subtypes []keyboard.Subtype
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		layout := ""
		if idx := strings.IndexByte(entry, ':'); idx >= 0 {
			layout = entry[idx+1:]
			entry = entry[:idx]
		}
		locale := dictionary.ParseLocale(entry)
		if locale.IsZero() {
			log.Warnf("Skipping unparseable locale %q", entry)
			continue
		}
		subtypes = append(subtypes, keyboard.Subtype{Locale: locale, Layout: layout})
	}
	return subtypes
}

// runCLI reads words from stdin and prints verdicts until EOF.
func runCLI(filter *distracter.Filter, locale dictionary.Locale) error {
	cli := logger.New("wsieve")
	cli.Print("WordSieve CLI")
	cli.Printf("Locale %s - type a word and press Enter for a verdict (Ctrl+C to exit):", locale)

	reader := bufio.NewReader(os.Stdin)
	var prev suggest.PrevWordsContext
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}

		start := time.Now()
		verdict := filter.IsDistracter(prev, word, locale)
		elapsed := time.Since(start)

		if verdict {
			cli.Printf("'%s' is a distracter  [ %v ]", word, elapsed)
		} else {
			cli.Printf("'%s' is not a distracter  [ %v ]", word, elapsed)
		}
		prev = suggest.PrevWordsContext{Words: []string{word}}
	}
}

// Copyright 2025 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spellcheck server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

SpellServe compiles Hunspell-style affix and dictionary files into
query-ready word sets and answers membership queries ("is this word spelled
correctly?"). It can operate as a MessagePack IPC server for integration
with text editors, or as a CLI application for testing and debugging.

The compiler expands every flagged root word through the affix rules,
merges the personal dictionary on top, and partitions the results into
accepted, accepted-but-never-suggested, and forbidden sets. Forbidden
status always wins at query time.

# Usage

Start the server with the configured dictionaries:

	spellserve

Use custom dictionary files and enable debug mode:

	spellserve -aff data/en.aff -dic data/en.dic -d

Run in CLI mode for interactive checking:

	spellserve -c -timing

# Input files

The affix document declares prefix/suffix rule groups:

	PFX A Y 1
	PFX A 0 re .
	SFX N Y 2
	SFX N y ies [^aeiou]y
	SFX N 0 s .

The word list starts with an advisory entry count followed by
root[/flags] lines:

	3
	walk/N
	talk/N
	building

The personal dictionary adds or forbids words, optionally borrowing the
rules of an existing root:

	coolword
	newword/walk
	*badword

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, dictionary file locations, and CLI defaults:

	[server]
	max_word_len = 60
	batch_limit = 256

	[dict]
	affix_path = "data/en.aff"
	wordlist_path = "data/en.dic"
	personal_path = ""

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Check requests
are processed synchronously with microsecond timing information included in
responses.

Send a check request:

	{"id": "req1", "w": "rebuilding"}

Receive the verdict:

	{"id": "req1", "r": [{"w": "rebuilding", "ok": true}], "c": 1, "t": 12}

Dictionary management requests allow inspection and reloads at runtime:

	{"id": "dict1", "action": "get_info"}
	{"id": "dict2", "action": "reload"}

# Command Line Flags

The following flags control application behavior:

	-aff string
	    Affix definition file (overrides config)
	-dic string
	    Main word list file (overrides config)
	-personal string
	    Personal dictionary file (overrides config)
	-config string
	    Custom config.toml location
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-no-filter
	    Disable input filtering for debugging
	-timing
	    Show per-line timing in CLI mode

All logs go to stderr; stdout carries only the IPC stream in server mode.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	affPath := flag.String("aff", "", "Affix definition file (overrides config)")
	dicPath := flag.String("dic", "", "Main word list file (overrides config)")
	personalPath := flag.String("personal", "", "Personal dictionary file (overrides config)")
	configPath := flag.String("config", "", "Custom config.toml location")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only) - checks raw tokens (numbers, symbols, etc)")
	showTiming := flag.Bool("timing", false, "Show per-line timing in CLI mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	// Flags win over config for the document locations.
	if *affPath != "" {
		appConfig.Dict.AffixPath = *affPath
	}
	if *dicPath != "" {
		appConfig.Dict.WordlistPath = *dicPath
	}
	if *personalPath != "" {
		appConfig.Dict.PersonalPath = *personalPath
	}

	dict, err := loadDictionary(appConfig)
	if err != nil {
		log.Fatalf("Failed to build dictionary: %v", err)
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(dict, *noFilter || appConfig.CLI.DefaultNoFilter, *showTiming || appConfig.CLI.DefaultShowTiming)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(dict, appConfig)

	showStartupInfo(appConfig)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadDictionary reads the configured documents and compiles them.
func loadDictionary(cfg *config.Config) (*dictionary.Dictionary, error) {
	dict := dictionary.New()

	affText, err := utils.ReadTextFile(cfg.Dict.AffixPath)
	if err != nil {
		return nil, err
	}
	if err := dict.LoadAffix(affText); err != nil {
		return nil, err
	}

	dicText, err := utils.ReadTextFile(cfg.Dict.WordlistPath)
	if err != nil {
		return nil, err
	}
	dict.LoadWordlist(dicText)

	if cfg.Dict.PersonalPath != "" {
		personalText, err := utils.ReadTextFile(cfg.Dict.PersonalPath)
		if err != nil {
			return nil, err
		}
		dict.LoadPersonal(personalText)
	}

	if err := dict.Compile(); err != nil {
		return nil, err
	}
	return dict, nil
}

// printVersion shows the styled version banner.
func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ SpellServe ] Checks your spelling really Fast!")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(cfg *config.Config) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("affix: ( %s )", cfg.Dict.AffixPath)
	log.Infof("wordlist: ( %s )", cfg.Dict.WordlistPath)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}

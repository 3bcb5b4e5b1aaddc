// Package cli handles cmd line input and check results for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, checking every word of a
// line against the compiled dictionary. Filtering of junk input can be
// disabled for debugging raw set contents.
type InputHandler struct {
	dict         *dictionary.Dictionary
	noFilter     bool
	showTiming   bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(dict *dictionary.Dictionary, noFilter, showTiming bool) *InputHandler {
	return &InputHandler{
		dict:       dict,
		noFilter:   noFilter,
		showTiming: showTiming,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("SpellServe CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word or sentence and press Enter to check it (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput checks every whitespace-separated word of a line and prints a
// verdict per word. Results are formatted and printed to the log.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	words := strings.Fields(line)
	start := time.Now()

	misspelled := 0
	for _, word := range words {
		if !h.noFilter && !utils.IsValidWord(word) {
			log.Debugf("Skipping filtered input: '%s'", word)
			continue
		}

		correct := h.dict.Check(word)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", word)
		if correct {
			log.Printf("  %-40s ok", clWord)
		} else {
			misspelled++
			log.Printf("  %-40s \033[38;5;203mmisspelled\033[0m", clWord)
		}
	}

	elapsed := time.Since(start)
	if h.showTiming {
		log.Printf("Checked %d words, %d misspelled, took [ %v ]", len(words), misspelled, elapsed)
	} else {
		log.Debugf("Took [ %v ] for %d words", elapsed, len(words))
	}
}

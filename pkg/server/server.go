package server

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spellcheck queries
type Server struct {
	dict         *dictionary.Dictionary
	cfg          *config.Config
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	log          *log.Logger
	requestCount int
}

// NewServer creates a new check server using stdin/stdout for IPC
func NewServer(dict *dictionary.Dictionary, cfg *config.Config) *Server {
	return newServer(dict, cfg, os.Stdin, os.Stdout)
}

func newServer(dict *dictionary.Dictionary, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		dict: dict,
		cfg:  cfg,
		dec:  msgpack.NewDecoder(r),
		enc:  msgpack.NewEncoder(w),
		log:  logger.New("ipc"),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	s.log.Debug("Starting server.")

	// Signal that the server is ready
	s.send(map[string]string{"status": "ready"})

	for {
		var request CheckRequest
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a decoded request
func (s *Server) handleRequest(request CheckRequest) {
	s.requestCount++
	if s.requestCount%100 == 0 {
		s.log.Debugf("Handled %d requests", s.requestCount)
	}

	// A failed reload can leave the dictionary uncompiled; queries would
	// panic, so refuse them until a reload succeeds.
	if !s.dict.Compiled() && request.Action != "reload" {
		s.sendError(request.ID, "Dictionary is not compiled", 409)
		return
	}

	if request.Action != "" {
		s.handleDictAction(request)
		return
	}
	s.handleCheck(request)
}

// send marshals the given response and writes it to the client.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(CheckError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

// handleCheck processes a check request. It validates word lengths against
// the configured maximum, runs every word through the compiled dictionary
// and replies with one verdict per word plus timing info.
func (s *Server) handleCheck(request CheckRequest) {
	words := request.Words
	if request.Word != "" {
		words = append([]string{request.Word}, words...)
	}

	if len(words) == 0 {
		s.sendError(request.ID, "Missing 'w' or 'ws' parameter", 400)
		s.log.Debug("No words in request")
		return
	}

	if limit := s.cfg.Server.BatchLimit; limit > 0 && len(words) > limit {
		s.sendError(request.ID, fmt.Sprintf("Batch exceeds limit of %d words", limit), 400)
		s.log.Debugf("Batch of %d rejected", len(words))
		return
	}

	// Length limit counts runes, not bytes, so multibyte words are not
	// penalized for their encoding.
	maxLen := s.cfg.Server.MaxWordLen
	for _, w := range words {
		if maxLen > 0 && utf8.RuneCountInString(w) > maxLen {
			s.sendError(request.ID, fmt.Sprintf("Word exceeds maximum length of %d characters", maxLen), 400)
			s.log.Debug("Word too long in request")
			return
		}
	}

	start := time.Now()
	results := make([]CheckResult, len(words))
	for i, w := range words {
		results[i] = CheckResult{Word: w, Correct: s.dict.Check(w)}
	}
	elapsed := time.Since(start)

	s.send(CheckResponse{
		ID:        request.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleDictAction processes dictionary management requests
func (s *Server) handleDictAction(request CheckRequest) {
	switch request.Action {
	case "get_info":
		s.send(DictionaryResponse{
			ID:     request.ID,
			Status: "ok",
			Counts: s.dict.Stats(),
		})
	case "list_words":
		s.send(DictionaryResponse{
			ID:     request.ID,
			Status: "ok",
			Words:  s.dict.WordlistItems(),
		})
	case "reload":
		if err := s.reload(); err != nil {
			s.log.Errorf("Reload failed: %v", err)
			s.send(DictionaryResponse{
				ID:     request.ID,
				Status: "error",
				Error:  err.Error(),
			})
			return
		}
		s.send(DictionaryResponse{
			ID:     request.ID,
			Status: "ok",
			Counts: s.dict.Stats(),
		})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// reload re-reads the configured dictionary documents and recompiles.
// A failed reload leaves the previous compiled sets in place, which the
// dictionary's atomic compile already guarantees.
func (s *Server) reload() error {
	affText, err := utils.ReadTextFile(s.cfg.Dict.AffixPath)
	if err != nil {
		return err
	}
	dicText, err := utils.ReadTextFile(s.cfg.Dict.WordlistPath)
	if err != nil {
		return err
	}
	if err := s.dict.LoadAffix(affText); err != nil {
		return err
	}
	s.dict.LoadWordlist(dicText)
	if path := s.cfg.Dict.PersonalPath; path != "" {
		personalText, err := utils.ReadTextFile(path)
		if err != nil {
			return err
		}
		s.dict.LoadPersonal(personalText)
	}
	return s.dict.Compile()
}

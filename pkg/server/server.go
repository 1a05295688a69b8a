package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wordsieve/wordsieve/internal/utils"
	"github.com/wordsieve/wordsieve/pkg/dictionary"
	"github.com/wordsieve/wordsieve/pkg/distracter"
	"github.com/wordsieve/wordsieve/pkg/suggest"
)

// Server handles the IPC for distracter verdicts
type Server struct {
	filter        *distracter.Filter
	decoder       *msgpack.Decoder
	encoder       *msgpack.Encoder
	maxWordLength int
}

// NewServer creates a new verdict server using stdin/stdout for IPC
func NewServer(filter *distracter.Filter, maxWordLength int) *Server {
	return &Server{
		filter:        filter,
		decoder:       msgpack.NewDecoder(os.Stdin),
		encoder:       msgpack.NewEncoder(os.Stdout),
		maxWordLength: maxWordLength,
	}
}

// NewServerWithStreams creates a server over arbitrary streams, used by
// tests.
func NewServerWithStreams(filter *distracter.Filter, maxWordLength int, r io.Reader, w io.Writer) *Server {
	return &Server{
		filter:        filter,
		decoder:       msgpack.NewDecoder(r),
		encoder:       msgpack.NewEncoder(w),
		maxWordLength: maxWordLength,
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting verdict server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var request VerdictRequest
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request
func (s *Server) handleRequest(request VerdictRequest) {
	switch request.Cmd {
	case "", "check":
		s.handleCheck(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Cmd), 400)
	}
}

// handleCheck validates a verdict request, runs the filter and answers
// with the verdict plus timing.
func (s *Server) handleCheck(request VerdictRequest) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in request")
		return
	}
	if len(request.Word) > s.maxWordLength {
		s.sendError(request.ID, fmt.Sprintf("Word exceeds maximum length of %d characters", s.maxWordLength), 400)
		return
	}
	if !utils.IsValidInput(request.Word) {
		// Not evaluable input is never a distracter.
		s.send(VerdictResponse{ID: request.ID, Distracter: false})
		return
	}

	locale := dictionary.ParseLocale(request.Locale)
	prev := suggest.PrevWordsContext{Words: request.PrevWords}

	start := time.Now()
	verdict := s.filter.IsDistracter(prev, request.Word, locale)
	elapsed := time.Since(start)

	s.send(VerdictResponse{
		ID:         request.ID,
		Distracter: verdict,
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

package server

import (
	"bufio"
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/wordgrep/internal/logger"
	"github.com/bastiangx/wordgrep/pkg/dictionary"
	"github.com/bastiangx/wordgrep/pkg/filter"
	"github.com/bastiangx/wordgrep/pkg/freq"
)

// Server answers filter queries against a resident dictionary.
type Server struct {
	dict     *dictionary.Dict
	freqs    *freq.CharFreq
	maxLimit int
	dec      *msgpack.Decoder
	enc      *msgpack.Encoder
	out      *bufio.Writer
	log      *log.Logger
}

// New creates an IPC server over stdin/stdout. freqs may be nil when no
// frequency file exists; ranked queries then return an error response.
func New(dict *dictionary.Dict, freqs *freq.CharFreq, maxLimit int) *Server {
	return NewWith(os.Stdin, os.Stdout, dict, freqs, maxLimit)
}

// NewWith creates a server over arbitrary streams.
func NewWith(r io.Reader, w io.Writer, dict *dictionary.Dict, freqs *freq.CharFreq, maxLimit int) *Server {
	out := bufio.NewWriter(w)
	return &Server{
		dict:     dict,
		freqs:    freqs,
		maxLimit: maxLimit,
		dec:      msgpack.NewDecoder(bufio.NewReader(r)),
		enc:      msgpack.NewEncoder(out),
		out:      out,
		log:      logger.New("ipc"),
	}
}

// Start runs the request loop until stdin closes.
func (s *Server) Start() error {
	s.log.Debug("IPC loop started", "words", s.dict.Len())
	for {
		var req GrepRequest
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("client disconnected")
				return nil
			}
			// A framing error leaves the stream unusable; report and stop.
			s.log.Errorf("decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return err
		}
		s.handleGrep(req)
	}
}

// handleGrep applies one query's constraints and replies.
func (s *Server) handleGrep(req GrepRequest) {
	if req.Limit < 0 {
		s.sendError(req.ID, "limit must be non-negative", 400)
		return
	}
	if req.Limit > s.maxLimit {
		s.log.Debugf("limit %d capped to %d", req.Limit, s.maxLimit)
		req.Limit = s.maxLimit
	}

	f := filter.New(
		filter.ParseIgnoreChars(req.IgnoreChars),
		filter.ParsePositions(req.Target),
		filter.ParseElsewhere(req.Elsewhere),
	)

	start := time.Now()
	var words []string
	var err error
	if req.Limit > 0 {
		words, err = s.ranked(f, req.Limit)
	} else {
		words, err = s.all(f)
	}
	if err != nil {
		s.sendError(req.ID, err.Error(), 503)
		return
	}

	s.sendResponse(GrepResponse{
		ID:        req.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

// all collects every surviving word in traversal order.
func (s *Server) all(f *filter.Filter) ([]string, error) {
	words := []string{}
	err := s.dict.Walk(f.KnownPrefix(), func(lower, original string) error {
		if f.Accept(lower) {
			words = append(words, original)
		}
		return nil
	})
	return words, err
}

// ranked scores every surviving word and drains the best limit of them.
func (s *Server) ranked(f *filter.Filter, limit int) ([]string, error) {
	if s.freqs == nil {
		return nil, errors.New("frequency table unavailable, run analyse first")
	}
	topk := freq.NewTopK()
	err := s.dict.Walk(f.KnownPrefix(), func(lower, original string) error {
		if f.Accept(lower) {
			topk.Add(freq.NewWordScore(original, s.freqs))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	scored := topk.Drain(limit)
	words := make([]string, len(scored))
	for i, ws := range scored {
		words[i] = ws.Word
	}
	return words, nil
}

// sendResponse encodes one msgpack value and flushes it to the client.
func (s *Server) sendResponse(v any) {
	if err := s.enc.Encode(v); err != nil {
		s.log.Errorf("encoding response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.log.Errorf("flushing response: %v", err)
	}
}

// sendError sends an error value for a failed query.
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(GrepError{ID: id, Error: message, Code: code})
}

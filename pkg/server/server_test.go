package server

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/wordgrep/pkg/dictionary"
	"github.com/bastiangx/wordgrep/pkg/freq"
)

func testDict(t *testing.T) *dictionary.Dict {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words")
	words := "drive\ndoree\ndense\ndirty\nwrite\nwheel\n"
	if err := os.WriteFile(path, []byte(words), 0o644); err != nil {
		t.Fatalf("writing word source: %v", err)
	}
	dict, err := dictionary.Load(path)
	if err != nil {
		t.Fatalf("loading dictionary: %v", err)
	}
	return dict
}

func testFreqs() *freq.CharFreq {
	cf := freq.New()
	for _, c := range []byte("eeeeooorrddt") {
		cf.Add(c)
	}
	return cf
}

// roundTrip encodes the requests, runs the server loop to EOF, and
// decodes every response value.
func roundTrip(t *testing.T, srvDict *dictionary.Dict, freqs *freq.CharFreq, maxLimit int, reqs []GrepRequest) []GrepResponse {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range reqs {
		if err := enc.Encode(req); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}

	var out bytes.Buffer
	srv := NewWith(&in, &out, srvDict, freqs, maxLimit)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var responses []GrepResponse
	dec := msgpack.NewDecoder(&out)
	for {
		var resp GrepResponse
		if err := dec.Decode(&resp); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("decoding response: %v", err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestServeFilterQuery(t *testing.T) {
	reqs := []GrepRequest{{
		ID:          "q1",
		Target:      "d***e",
		IgnoreChars: "abc",
		Elsewhere:   []string{"*r***"},
	}}
	responses := roundTrip(t, testDict(t), testFreqs(), 64, reqs)

	if len(responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(responses))
	}
	resp := responses[0]
	if resp.ID != "q1" {
		t.Errorf("response ID = %q, want q1", resp.ID)
	}
	if !reflect.DeepEqual(resp.Words, []string{"doree"}) {
		t.Errorf("Words = %v, want [doree]", resp.Words)
	}
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestServeRankedQuery(t *testing.T) {
	reqs := []GrepRequest{{
		ID:     "q2",
		Target: "d****",
		Limit:  2,
	}}
	responses := roundTrip(t, testDict(t), testFreqs(), 64, reqs)

	if len(responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(responses))
	}
	resp := responses[0]
	if len(resp.Words) != 2 {
		t.Fatalf("Words = %v, want exactly 2 ranked words", resp.Words)
	}
	// doree (d,o,r,e = 2+3+2+4) outranks the other d-words.
	if resp.Words[0] != "doree" {
		t.Errorf("best ranked word = %q, want doree", resp.Words[0])
	}
}

func TestServeRankedWithoutFreqs(t *testing.T) {
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	if err := enc.Encode(GrepRequest{ID: "q3", Target: "d****", Limit: 3}); err != nil {
		t.Fatalf("encoding request: %v", err)
	}

	var out bytes.Buffer
	srv := NewWith(&in, &out, testDict(t), nil, 64)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var gerr GrepError
	if err := msgpack.NewDecoder(&out).Decode(&gerr); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if gerr.ID != "q3" || gerr.Code != 503 {
		t.Errorf("error response = %+v, want ID q3 and code 503", gerr)
	}
}

func TestServeLimitCap(t *testing.T) {
	reqs := []GrepRequest{{ID: "q4", Limit: 100}}
	responses := roundTrip(t, testDict(t), testFreqs(), 2, reqs)

	if len(responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(responses))
	}
	if len(responses[0].Words) != 2 {
		t.Errorf("limit 100 with cap 2 returned %d words, want 2", len(responses[0].Words))
	}
}

func TestServeMultipleRequests(t *testing.T) {
	reqs := []GrepRequest{
		{ID: "a", IgnoreChars: "d"},
		{ID: "b", Target: "w****"},
	}
	responses := roundTrip(t, testDict(t), testFreqs(), 64, reqs)

	if len(responses) != 2 {
		t.Fatalf("got %d responses, want 2", len(responses))
	}
	if responses[0].ID != "a" || responses[1].ID != "b" {
		t.Errorf("responses out of order: %q, %q", responses[0].ID, responses[1].ID)
	}
	if responses[0].Count != 2 {
		t.Errorf("query a matched %d, want 2 (write, wheel)", responses[0].Count)
	}
	if responses[1].Count != 2 {
		t.Errorf("query b matched %d, want 2 (write, wheel)", responses[1].Count)
	}
}

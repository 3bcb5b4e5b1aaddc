package server

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/vmihailenco/msgpack/v5"
)

const testAffixDoc = `NOSUGGEST !
PFX A Y 1
PFX A 0 re .
SFX N Y 1
SFX N 0 en .
`

const testWordlistDoc = `2
xxx/AN
walk
`

func testDictionary(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	d := dictionary.New()
	if err := d.LoadAffix(testAffixDoc); err != nil {
		t.Fatalf("LoadAffix: %v", err)
	}
	d.LoadWordlist(testWordlistDoc)
	if err := d.Compile(); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return d
}

// runServer feeds encoded requests through a server instance and returns a
// decoder over everything it wrote.
func runServer(t *testing.T, requests ...CheckRequest) *msgpack.Decoder {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		if err := enc.Encode(req); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	var out bytes.Buffer
	srv := newServer(testDictionary(t), config.DefaultConfig(), &in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	var ready map[string]string
	if err := dec.Decode(&ready); err != nil {
		t.Fatalf("decode ready signal: %v", err)
	}
	if ready["status"] != "ready" {
		t.Fatalf("missing ready signal, got %v", ready)
	}
	return dec
}

func TestServerCheckSingle(t *testing.T) {
	dec := runServer(t,
		CheckRequest{ID: "r1", Word: "rexxxen"},
		CheckRequest{ID: "r2", Word: "nope"},
	)

	var resp CheckResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "r1" || resp.Count != 1 || !resp.Results[0].Correct {
		t.Errorf("unexpected response: %+v", resp)
	}

	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "r2" || resp.Results[0].Correct {
		t.Errorf("misspelled word reported correct: %+v", resp)
	}
}

func TestServerCheckBatch(t *testing.T) {
	dec := runServer(t, CheckRequest{ID: "b1", Words: []string{"walk", "wakl", "xxxen"}})

	var resp CheckResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 3 {
		t.Fatalf("want 3 results, got %d", resp.Count)
	}
	want := []bool{true, false, true}
	for i, result := range resp.Results {
		if result.Correct != want[i] {
			t.Errorf("result %d (%q): want %v, got %v", i, result.Word, want[i], result.Correct)
		}
	}
}

func TestServerMissingWord(t *testing.T) {
	dec := runServer(t, CheckRequest{ID: "e1"})

	var errResp CheckError
	if err := dec.Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.ID != "e1" || errResp.Code != 400 {
		t.Errorf("unexpected error response: %+v", errResp)
	}
}

func TestServerGetInfo(t *testing.T) {
	dec := runServer(t, CheckRequest{ID: "d1", Action: "get_info"})

	var resp DictionaryResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("unexpected status: %+v", resp)
	}
	// xxx/AN expands to four accepted spellings plus the bare root walk.
	if resp.Counts["words"] != 5 {
		t.Errorf("want 5 accepted words, got %d", resp.Counts["words"])
	}
}

func TestServerListWords(t *testing.T) {
	dec := runServer(t, CheckRequest{ID: "d2", Action: "list_words"})

	var resp DictionaryResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Words) != 5 {
		t.Fatalf("want 5 words, got %v", resp.Words)
	}
	for i := 1; i < len(resp.Words); i++ {
		if resp.Words[i-1] >= resp.Words[i] {
			t.Fatalf("word export not sorted: %v", resp.Words)
		}
	}
}

func TestServerUnknownAction(t *testing.T) {
	dec := runServer(t, CheckRequest{ID: "d3", Action: "frobnicate"})

	var errResp CheckError
	if err := dec.Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != 400 {
		t.Errorf("unexpected error response: %+v", errResp)
	}
}

func TestServerWordTooLong(t *testing.T) {
	long := bytes.Repeat([]byte("a"), 100)
	dec := runServer(t, CheckRequest{ID: "e2", Word: string(long)})

	var errResp CheckError
	if err := dec.Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != 400 {
		t.Errorf("unexpected error response: %+v", errResp)
	}
}

func TestServerMultibyteWordLength(t *testing.T) {
	// 40 runes but 80 bytes; the default limit of 60 counts runes, so this
	// must get a verdict, not a length rejection.
	word := strings.Repeat("é", 40)
	dec := runServer(t, CheckRequest{ID: "m1", Word: word})

	var resp CheckResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 1 || len(resp.Results) != 1 {
		t.Fatalf("word rejected instead of checked: %+v", resp)
	}
	if resp.Results[0].Word != word {
		t.Errorf("verdict for wrong word: %q", resp.Results[0].Word)
	}
}

func TestServerErrorWireShape(t *testing.T) {
	dec := runServer(t, CheckRequest{ID: "e3"})

	// The error code must not reuse the "c" key, which carries the result
	// count in check responses.
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw["code"]; !ok {
		t.Errorf("error payload missing 'code' key: %v", raw)
	}
	if _, ok := raw["c"]; ok {
		t.Errorf("error payload reuses 'c' key: %v", raw)
	}
}

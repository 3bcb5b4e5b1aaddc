/*
Package server implements msgpack IPC for spellcheck services.

The server package provides a minimal interface for word validity queries
using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports check requests,
dictionary management ops, and compiled-set exports. Messages are processed
synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send
structured messages via stdin and receive responses through stdout. Each
message contains an ID field and other fields based on the operation type.

Check requests use mainly this structure:

	{"id": "req_001", "w": "rebuilding"}

Batched checks carry a word array instead:

	{"id": "req_002", "ws": ["ths", "sentence", "has", "typso"]}

The server responds with one verdict per word:

	{"id": "req_002", "r": [{"w": "ths", "ok": false}, ...], "c": 4, "t": 93}

Dict management enables runtime inspection and reloads:

	{"id": "dict_001", "action": "get_info"}
	{"id": "dict_002", "action": "reload"}
	{"id": "dict_003", "action": "list_words"}

Response structures include status information and error details when an op
fails. Timing is reported in microseconds. Rejected requests get an error
payload with a numeric code:

	{"id": "req_003", "e": "Missing 'w' or 'ws' parameter", "code": 400}
*/
package server

// CheckRequest - incoming request; either a single word, a word batch, or a
// dictionary management action.
type CheckRequest struct {
	ID     string   `msgpack:"id"`
	Word   string   `msgpack:"w,omitempty"`
	Words  []string `msgpack:"ws,omitempty"`
	Action string   `msgpack:"action,omitempty"`
}

// CheckResult - verdict for one word
type CheckResult struct {
	Word    string `msgpack:"w"`
	Correct bool   `msgpack:"ok"`
}

// CheckResponse - check response
type CheckResponse struct {
	ID        string        `msgpack:"id"`
	Results   []CheckResult `msgpack:"r"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// DictionaryResponse - dictionary operation response
type DictionaryResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Error  string         `msgpack:"error,omitempty"`
	Counts map[string]int `msgpack:"counts,omitempty"`
	Words  []string       `msgpack:"words,omitempty"`
}

// CheckError holds basic error information for failed requests
type CheckError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"code"`
}

/*
Package server implements msgpack IPC for the distracter filter.

The server operates on a request/response model: clients send structured
messages via stdin and receive responses through stdout, both binary
msgpack encoded. Each message carries an ID field echoed in the response.

A verdict request names the tested word, the locale tag and optionally the
previous words of the typing context:

	{"id": "req_001", "cmd": "check", "w": "teh", "l": "en-US", "pw": ["hello"]}

The server answers with the verdict and timing info:

	{"id": "req_001", "d": true, "t": 1843}

A "health" command answers with a bare status message. Malformed requests
produce an error response with a code instead of tearing the session down.

Queries are processed strictly one at a time; the underlying engine keeps
a single active keyboard/dictionary binding.
*/
package server

// VerdictRequest - incoming distracter query
type VerdictRequest struct {
	ID        string   `msgpack:"id"`
	Cmd       string   `msgpack:"cmd,omitempty"`
	Word      string   `msgpack:"w"`
	Locale    string   `msgpack:"l"`
	PrevWords []string `msgpack:"pw,omitempty"`
}

// VerdictResponse - verdict with timing in microseconds
type VerdictResponse struct {
	ID         string `msgpack:"id"`
	Distracter bool   `msgpack:"d"`
	TimeTaken  int64  `msgpack:"t"`
}

// StatusResponse - health/readiness reply
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

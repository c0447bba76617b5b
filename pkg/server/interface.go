/*
Package server implements msgpack IPC for filter queries.

The server operates on a request-response model over stdin/stdout: each
incoming msgpack value is one query, answered with one msgpack value.
A query carries the same constraint axes as the grep command:

	{"id": "req_001", "t": "d***e", "x": "abc", "d": ["*r***"], "k": 10}

The server replies with the surviving words, ranked when "k" is set:

	{"id": "req_001", "w": ["drive", "doree"], "c": 2, "t": 145}

Malformed queries produce an error value instead:

	{"id": "req_001", "e": "frequency table unavailable", "c": 503}

The dictionary is loaded once at startup; the frequency table is loaded
when present, and ranked queries fail cleanly without it. EOF on stdin
shuts the loop down.
*/
package server

// GrepRequest is one filter query.
type GrepRequest struct {
	ID          string   `msgpack:"id"`
	Target      string   `msgpack:"t,omitempty"`
	IgnoreChars string   `msgpack:"x,omitempty"`
	Elsewhere   []string `msgpack:"d,omitempty"`
	Limit       int      `msgpack:"k,omitempty"`
}

// GrepResponse carries the surviving words for a query.
type GrepResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"w"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// GrepError holds basic error information for failed queries.
type GrepError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

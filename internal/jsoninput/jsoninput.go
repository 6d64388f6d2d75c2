// SPDX-License-Identifier: MIT

// Package jsoninput reads reconstruction requests from JSON documents of the form
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2",  "value": "111"}
//	}
//
// into sampleset.Input. Entries keep their document order so the
// keep-last duplicate policy sees them as written. Validation of keys,
// values and bases is left to sampleset.Build; this package only rejects
// documents that are not JSON objects or lack the k metadata.
package jsoninput

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyrecon/sampleset"
)

var (
	// ErrNotObject indicates a document whose top level is not a JSON object.
	ErrNotObject = errors.New("jsoninput: document is not a JSON object")

	// ErrMissingKeys indicates a document without the "keys" metadata object.
	ErrMissingKeys = errors.New("jsoninput: missing \"keys\" metadata")

	// ErrMissingRequired indicates "keys" without a usable "k".
	ErrMissingRequired = errors.New("jsoninput: missing or invalid \"k\"")
)

// invalidBase is handed to the builder for bases that are present but not
// integers, so the failure surfaces as a keyed radix.DecodeError.
const invalidBase = -1

type metadata struct {
	N *int `json:"n"`
	K *int `json:"k"`
}

type rawRoot struct {
	Base  json.RawMessage `json:"base"`
	Value json.RawMessage `json:"value"`
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string) (sampleset.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return sampleset.Input{}, fmt.Errorf("jsoninput: %w", err)
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return sampleset.Input{}, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Parse decodes one JSON document from r.
//
// Errors:
//   - ErrNotObject, ErrMissingKeys, ErrMissingRequired.
//   - Wrapped encoding/json syntax errors.
func Parse(r io.Reader) (sampleset.Input, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return sampleset.Input{}, fmt.Errorf("jsoninput: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return sampleset.Input{}, ErrNotObject
	}

	var in sampleset.Input
	var meta *metadata
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return sampleset.Input{}, fmt.Errorf("jsoninput: %w", err)
		}
		key, _ := tok.(string) // object keys are always strings

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return sampleset.Input{}, fmt.Errorf("jsoninput: value of %q: %w", key, err)
		}

		if key == sampleset.MetadataKey {
			var m metadata
			if err = json.Unmarshal(raw, &m); err != nil {
				return sampleset.Input{}, fmt.Errorf("%w: %v", ErrMissingRequired, err)
			}
			meta = &m

			continue
		}

		entry, ok := parseEntry(key, raw)
		if !ok {
			continue
		}
		in.Entries = append(in.Entries, entry)
	}
	if _, err = dec.Token(); err != nil { // closing '}'
		return sampleset.Input{}, fmt.Errorf("jsoninput: %w", err)
	}

	if meta == nil {
		return sampleset.Input{}, ErrMissingKeys
	}
	if meta.K == nil {
		return sampleset.Input{}, ErrMissingRequired
	}
	in.Required = *meta.K
	if meta.N != nil {
		in.Declared = *meta.N
	}

	return in, nil
}

// parseEntry converts one share object. Non-object values are reported as
// not ok and skipped; missing fields become zero values for the builder to
// filter.
func parseEntry(key string, raw json.RawMessage) (sampleset.RawEntry, bool) {
	var root rawRoot
	if err := json.Unmarshal(raw, &root); err != nil {
		return sampleset.RawEntry{}, false
	}

	return sampleset.RawEntry{
		Key:   key,
		Value: scalarString(root.Value),
		Base:  parseBase(root.Base),
	}, true
}

// scalarString returns a JSON string's content, or the literal text of a
// number; anything else is treated as missing.
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

// parseBase accepts "16" or 16. Absent, null or empty means 0 (missing);
// anything else non-integer maps to invalidBase.
func parseBase(raw json.RawMessage) int {
	s := strings.TrimSpace(scalarString(raw))
	if s == "" {
		if len(raw) == 0 || string(raw) == "null" || string(raw) == `""` {
			return 0
		}

		return invalidBase
	}
	b, err := strconv.Atoi(s)
	if err != nil {
		return invalidBase
	}

	return b
}

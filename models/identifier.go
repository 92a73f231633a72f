// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/goccy/go-json"
)

var ErrInvalidIdentifier = errors.New("identifier must be a string or a number")

// Identifier is a request field that may arrive as a JSON string or number.
// Numbers keep their literal text, so 42 and "42" decode to the same value.
// null, false, "" and 0 decode to the zero Identifier, which counts as absent.
type Identifier string

func (id *Identifier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidIdentifier
	}

	switch {
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = Identifier(s)
		return nil
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*id = ""
		return nil
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return ErrInvalidIdentifier
		}
		if f == 0 {
			*id = ""
			return nil
		}
		*id = Identifier(data)
		return nil
	}

	return ErrInvalidIdentifier
}

// IsZero reports whether the field was absent or falsy
func (id Identifier) IsZero() bool {
	return id == ""
}

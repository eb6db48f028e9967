package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"golang.org/x/text/encoding/htmlindex"
)

// parseJSONBody decodes an application/json body into rc.Body.
//
// Requests of any other media type, and empty bodies, pass through untouched.
// A body larger than the configured limit, a charset other than UTF-8, or
// anything that is not a JSON object or array is an error.
func (h *Handler) parseJSONBody(rc *RequestContext) (*Response, error) {
	r := rc.Request
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return nil, nil
	}

	if charset, ok := params["charset"]; ok && !isUTF8(charset) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCharset, charset)
	}

	data, err := io.ReadAll(http.MaxBytesReader(rc.writer, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		return nil, fmt.Errorf("error reading request body: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	// only objects and arrays are accepted at the top level
	if data[0] != '{' && data[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value must be an object or an array", ErrMalformedJSON)
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	rc.Body = body
	return nil, nil
}

// isUTF8 resolves charset through the WHATWG label registry, so aliases such
// as "utf8" or "unicode-1-1-utf-8" are accepted too.
func isUTF8(charset string) bool {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return false
	}
	name, err := htmlindex.Name(enc)
	return err == nil && name == "utf-8"
}

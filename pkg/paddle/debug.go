package paddle

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
)

const maxDebugLength = 8000

var base64Pattern = regexp.MustCompile(`"[A-Za-z0-9+/]{200,}={0,2}"`)

func truncate(s string) string {
	if len(s) <= 200 {
		return s
	}

	return s[:100] + "...(" + strconv.Itoa(len(s)) + " chars)..." + s[len(s)-50:]
}

func debugPayload(r *Request) string {
	payload := *r
	payload.File = truncate(payload.File)

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(payload); err != nil {
		return err.Error()
	}

	return buf.String()
}

// debugResponse shortens embedded base64 strings and caps the body at maxDebugLength.
func debugResponse(data []byte) (string, bool) {
	text := base64Pattern.ReplaceAllStringFunc(string(data), truncate)

	if len(text) > maxDebugLength {
		return text[:maxDebugLength], true
	}

	return text, false
}

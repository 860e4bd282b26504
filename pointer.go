package jtd

import "strings"

// Pointer renders an ErrorIndicator's InstancePath as an RFC 6901 JSON
// Pointer string, escaping "~" and "/" in each token per RFC 6901 §3. This
// exists to support the testable property of RFC 8927 that every
// emitted instance path is a valid JSON Pointer into the instance when
// joined with "/".
func (e ErrorIndicator) Pointer() string {
	return tokensToPointer(e.InstancePath)
}

func tokensToPointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteByte('/')
		b.WriteString(escapePointerToken(tok))
	}
	return b.String()
}

func escapePointerToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	tok = strings.ReplaceAll(tok, "/", "~1")
	return tok
}

// pointerTokens is the inverse of tokensToPointer: it splits an RFC 6901
// JSON Pointer back into its unescaped reference tokens. It is used only
// by tests to check the Pointer()/pointerTokens round trip.
func pointerTokens(pointer string) []string {
	if pointer == "" {
		return []string{}
	}
	parts := strings.Split(pointer, "/")[1:]
	tokens := make([]string, len(parts))
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		p = strings.ReplaceAll(p, "~0", "~")
		tokens[i] = p
	}
	return tokens
}

package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Calculator computes file checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of the content with comments
	// and insignificant whitespace removed.
	CalculateNormalized(content []byte) string
}

// SHA256 implements Calculator using SHA-256, hex encoded.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(Normalize(string(content))))
	return hex.EncodeToString(hash[:])
}

type scanState int

const (
	ssNormal scanState = iota
	ssComment
	ssQuote
)

const (
	commentStart = "<!--"
	commentEnd   = "-->"
)

// Normalize removes XML comments and collapses whitespace runs outside of
// quoted attribute values into single spaces. Whitespace next to a tag
// delimiter is dropped entirely.
func Normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := ssNormal
	var quote byte
	pendingSpace := false

	for i := 0; i < len(content); {
		switch state {
		case ssNormal:
			if strings.HasPrefix(content[i:], commentStart) {
				state = ssComment
				i += len(commentStart)
				continue
			}
			r, size := utf8.DecodeRuneInString(content[i:])
			if unicode.IsSpace(r) {
				pendingSpace = true
				i += size
				continue
			}
			if pendingSpace && r != '>' && r != '/' && !endsWithDelimiter(&b) && r != '<' {
				b.WriteByte(' ')
			}
			pendingSpace = false
			if r == '"' || r == '\'' {
				state = ssQuote
				quote = byte(r)
			}
			b.WriteString(content[i : i+size])
			i += size

		case ssComment:
			if strings.HasPrefix(content[i:], commentEnd) {
				state = ssNormal
				i += len(commentEnd)
				continue
			}
			i++

		case ssQuote:
			b.WriteByte(content[i])
			if content[i] == quote {
				state = ssNormal
			}
			i++
		}
	}

	return b.String()
}

func endsWithDelimiter(b *strings.Builder) bool {
	s := b.String()
	if s == "" {
		return true
	}
	last := s[len(s)-1]
	return last == '>' || last == '<'
}

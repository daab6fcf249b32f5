package words

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/katas-backend/internal/domain"
)

// ErrIndexOutOfRange is reported when a word is too short for its position.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError identifies the first word that has no character at its own position.
// It matches both ErrIndexOutOfRange and domain.ErrValidation.
type IndexError struct {
	Position int
	Word     string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("word %q at position %d has %d characters, need at least %d: %s",
		e.Word, e.Position, len([]rune(e.Word)), e.Position+1, ErrIndexOutOfRange)
}

func (e *IndexError) Unwrap() []error {
	return []error{ErrIndexOutOfRange, domain.ErrValidation}
}

// Pick concatenates the i-th character of the i-th word. Characters are
// Unicode code points. An empty list yields "".
func Pick(words []string) (string, error) {
	var b strings.Builder
	for i, w := range words {
		runes := []rune(w)
		if i >= len(runes) {
			return "", &IndexError{Position: i, Word: w}
		}
		b.WriteRune(runes[i])
	}
	return b.String(), nil
}

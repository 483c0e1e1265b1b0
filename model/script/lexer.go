package script

import (
	"fmt"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	numberCode
	stringCode
	identifierCode
	comparisonCode
	operatorCode
	openParenCode
	closeParenCode
	commaCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	numberToken     = parsly.NewToken(numberCode, "Number", &numberMatcher{})
	stringToken     = parsly.NewToken(stringCode, "String", &stringMatcher{})
	identifierToken = parsly.NewToken(identifierCode, "Identifier", &identifierMatcher{})
	comparisonToken = parsly.NewToken(comparisonCode, "Comparison", &comparisonMatcher{})
	operatorToken   = parsly.NewToken(operatorCode, "Operator", &operatorMatcher{})
	openParenToken  = parsly.NewToken(openParenCode, "(", matcher.NewByte('('))
	closeParenToken = parsly.NewToken(closeParenCode, ")", matcher.NewByte(')'))
	commaToken      = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
)

type token struct {
	code int
	text string
	pos  int
}

// stripComments drops blank lines and lines starting with '#', and the
// optional leading return keyword.
func stripComments(body string) string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, trimmed)
	}
	result := strings.Join(lines, " ")
	if strings.HasPrefix(result, "return ") || result == "return" {
		result = strings.TrimSpace(strings.TrimPrefix(result, "return"))
	}
	return result
}

func tokenize(expr string) ([]token, error) {
	cursor := parsly.NewCursor("", []byte(expr), 0)
	var tokens []token
	for {
		cursor.MatchOne(whitespaceToken)
		if cursor.Pos >= cursor.InputSize {
			return tokens, nil
		}
		pos := cursor.Pos
		matched := cursor.MatchAny(numberToken, stringToken, identifierToken, comparisonToken,
			operatorToken, openParenToken, closeParenToken, commaToken)
		switch matched.Code {
		case numberCode, stringCode, identifierCode, comparisonCode, operatorCode,
			openParenCode, closeParenCode, commaCode:
			tokens = append(tokens, token{code: matched.Code, text: matched.Text(cursor), pos: pos})
		default:
			return nil, fmt.Errorf("unexpected character %q at %d", expr[pos], pos)
		}
	}
}

type numberMatcher struct{}

func (m *numberMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	matched := 0
	seenDot := false
	for i := pos; i < size; i++ {
		switch {
		case isDigit(input[i]):
			matched++
		case input[i] == '.' && !seenDot && matched > 0 && i+1 < size && isDigit(input[i+1]):
			seenDot = true
			matched++
		default:
			return matched
		}
	}
	return matched
}

// stringMatcher matches a double quoted literal honouring backslash escapes.
type stringMatcher struct{}

func (m *stringMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size || input[pos] != '"' {
		return 0
	}
	for i := pos + 1; i < size; i++ {
		switch input[i] {
		case '\\':
			i++
		case '"':
			return i - pos + 1
		}
	}
	return 0
}

type identifierMatcher struct{}

func (m *identifierMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size || !(isLetter(input[pos]) || input[pos] == '_') {
		return 0
	}
	matched := 1
	for i := pos + 1; i < size; i++ {
		if isLetter(input[i]) || isDigit(input[i]) || input[i] == '_' {
			matched++
			continue
		}
		break
	}
	return matched
}

type comparisonMatcher struct{}

func (m *comparisonMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	if pos+1 < size && input[pos+1] == '=' {
		switch input[pos] {
		case '=', '!', '<', '>':
			return 2
		}
	}
	switch input[pos] {
	case '<', '>':
		return 1
	}
	return 0
}

type operatorMatcher struct{}

func (m *operatorMatcher) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}
	switch cursor.Input[cursor.Pos] {
	case '+', '-', '*', '/', '%':
		return 1
	}
	return 0
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Package stylesheet checks that a stylesheet defines every class the mapping
// table can emit.
package stylesheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ClassNames returns every class used in a selector of the stylesheet,
// including rules nested in at-rules such as @media and @supports.
func ClassNames(r io.Reader) (map[string]struct{}, error) {
	parser := css.NewParser(parse.NewInput(r), false)
	names := make(map[string]struct{})

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse stylesheet: %w", err)
			}
			return names, nil
		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			for _, name := range selectorClasses(selectorText(data, parser.Values())) {
				names[name] = struct{}{}
			}
		}
	}
}

func selectorText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return sb.String()
}

// selectorClasses lexes a selector and returns the identifiers that follow a
// '.' delimiter.
func selectorClasses(selector string) []string {
	lexer := css.NewLexer(parse.NewInput(strings.NewReader(selector)))

	var (
		classes []string
		dot     bool
	)
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return classes
		case css.DelimToken:
			dot = string(text) == "."
			continue
		case css.IdentToken:
			if dot {
				classes = append(classes, unescape(string(text)))
			}
		}
		dot = false
	}
}

// unescape drops the backslash of simple escapes such as "w-1\/2". Hex escapes
// are left alone.
func unescape(ident string) string {
	if !strings.Contains(ident, `\`) {
		return ident
	}
	var sb strings.Builder
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c == '\\' && i+1 < len(ident) && !isHex(ident[i+1]) {
			i++
			c = ident[i]
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

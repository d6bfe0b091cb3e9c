package adapter

import (
	"errors"
	"go/parser"
	"go/scanner"
	"go/token"

	m "github.com/mouse-blink/gofixer/internal/model"
)

// Validator checks that a text is syntactically well-formed. A failing check
// returns a *model.Diagnostic.
type Validator interface {
	Check(path m.Path, text string) error
}

// NewValidator returns the validator registered under name: "go" or "none".
func NewValidator(name string) (Validator, error) {
	switch name {
	case "", "go":
		return NewGoValidator(), nil
	case "none":
		return NullValidator{}, nil
	default:
		return nil, errors.New("unknown validator " + name)
	}
}

// GoValidator validates Go source with go/parser.
type GoValidator struct{}

// NewGoValidator constructs a GoValidator.
func NewGoValidator() *GoValidator {
	return &GoValidator{}
}

// Check parses text as a Go file and reports the first syntax error.
func (v *GoValidator) Check(path m.Path, text string) error {
	fset := token.NewFileSet()

	_, err := parser.ParseFile(fset, string(path), text, parser.ParseComments|parser.AllErrors)
	if err == nil {
		return nil
	}

	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		first := list[0]

		return &m.Diagnostic{Message: first.Msg, Line: first.Pos.Line, Column: first.Pos.Column}
	}

	return &m.Diagnostic{Message: err.Error()}
}

// NullValidator accepts every text.
type NullValidator struct{}

// Check always succeeds.
func (NullValidator) Check(m.Path, string) error {
	return nil
}

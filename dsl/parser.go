package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[,;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node for a table description file:
//
//	table "Optional Title" {
//	  columns { "Name", "Age" }
//	  row { "Ada", "36" }
//	  row { "${user.name}", null }
//	}
type Document struct {
	Pos        lexer.Position `parser:"" json:"-"`
	Title      *StringLiteral `parser:"Newline* 'table' ( @String )? Newline* '{' Newline*"`
	Statements []*Statement   `parser:"( @@ ( ';' | Newline )* )* '}' Newline*"`
}

// Statement is either a columns declaration or a data row.
type Statement struct {
	Columns *CellList `parser:"  'columns' Newline* @@"`
	Row     *CellList `parser:"| 'row' Newline* @@"`
}

// CellList is a brace-delimited sequence of cells separated by commas,
// semicolons or newlines.
type CellList struct {
	Cells []*Cell `parser:"'{' Newline* ( @@ ( (',' | ';' | Newline+) Newline* @@ )* )? Newline* '}'"`
}

// Cell is a quoted string or the keyword null for an absent value.
type Cell struct {
	Null  bool           `parser:"  @'null'"`
	Value *StringLiteral `parser:"| @String"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses DSL content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses DSL content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

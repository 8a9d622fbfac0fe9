package encode

import (
	"fmt"

	"github.com/signadot/markconv/ir"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

// Colors maps the leaves of a document and its object fields to terminal
// color attributes.
type Colors struct {
	Map map[Colorable][]color.Attribute
}

func NewColors() *Colors {
	return &Colors{
		Map: map[Colorable][]color.Attribute{
			{Type: ir.ObjectType, Attr: FieldColor}: {color.FgHiBlue, color.Bold},
			{Type: ir.StringType}:                   {color.FgGreen},
			{Type: ir.NumberType}:                   {color.FgHiCyan},
			{Type: ir.BoolType}:                     {color.FgYellow},
			{Type: ir.NullType}:                     {color.FgMagenta},
			{Type: ir.DateTimeType}:                 {color.FgHiMagenta},
		},
	}
}

func (c *Colors) Get(t ir.Type, a ColorAttr) []color.Attribute {
	return c.Map[Colorable{Type: t, Attr: a}]
}

func (c *Colors) property(t ir.Type, a ColorAttr) printer.PrintFunc {
	attrs := c.Get(t, a)
	return func() *printer.Property {
		if len(attrs) == 0 {
			return &printer.Property{}
		}
		prefix := ""
		for _, attr := range attrs {
			prefix += fmt.Sprintf("\x1b[%dm", attr)
		}
		return &printer.Property{
			Prefix: prefix,
			Suffix: fmt.Sprintf("\x1b[%dm", color.Reset),
		}
	}
}

// colorize re-lexes JSON or YAML text and decorates its tokens. JSON is
// valid flow style YAML, so one lexer serves both.
func (c *Colors) colorize(src string) string {
	tokens := lexer.Tokenize(src)
	if len(tokens) == 0 {
		return src
	}
	p := &printer.Printer{
		MapKey: c.property(ir.ObjectType, FieldColor),
		String: c.property(ir.StringType, ValueColor),
		Number: c.property(ir.NumberType, ValueColor),
		Bool:   c.property(ir.BoolType, ValueColor),
	}
	return p.PrintTokens(tokens)
}

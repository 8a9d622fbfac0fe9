package encode

import "github.com/signadot/markconv/format"

type EncodeOption func(*EncState)

// EncodeFormat converts the document to f before encoding it.
func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) {
		es.format = f
		es.convert = true
	}
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/markconv"
)

func MustString(doc markconv.Format, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

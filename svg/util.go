package svg

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strconv"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits written for attribute values.
const Precision = 8

func num(f float64) string {
	s := fmt.Sprintf("%.*g", Precision, f)
	return string(minify.Number([]byte(s), Precision))
}

func dec(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return string(minify.Decimal([]byte(s), Precision))
}

func cssColor(col color.RGBA) []byte {
	if col.A == 255 {
		buf := make([]byte, 7)
		buf[0] = '#'
		hex.Encode(buf[1:], []byte{col.R, col.G, col.B})
		if buf[1] == buf[2] && buf[3] == buf[4] && buf[5] == buf[6] {
			buf[2] = buf[3]
			buf[3] = buf[5]
			buf = buf[:4]
		}
		return buf
	}
	return []byte(fmt.Sprintf("rgba(%d,%d,%d,%v)", col.R, col.G, col.B, dec(float64(col.A)/255.0)))
}

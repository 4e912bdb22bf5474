package render

import (
	"bytes"
	"io"

	"gdpchart/internal/core/chart"
)

// Write encodes c in format f into w
func Write(w io.Writer, c *chart.Chart, f Format, m Meta) error {
	if f == XLSX {
		return Workbook(w, c, m)
	}
	return Image(w, c, f, m)
}

// Bytes is Write into a fresh buffer
func Bytes(c *chart.Chart, f Format, m Meta) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c, f, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

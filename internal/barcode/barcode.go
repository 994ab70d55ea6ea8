// Package barcode derives the fixed-length item barcode from an item
// name and renders its artifacts: a Code 39 PNG, the matching SVG, and
// a printable PDF label.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code39"
)

// MaxLength is the uniform barcode length. To fit on the label at the
// printer's DPI the encoded value cannot exceed this.
const MaxLength = 13

const (
	pngHeight = 45
	pngScale  = 2
	svgHeight = 200
)

// Derive computes the barcode value from an item name: uppercased,
// stripped of characters Code 39 cannot carry on the label, and
// left-padded with zeros to MaxLength. Values that still exceed
// MaxLength are returned as-is; the caller decides how to report them.
func Derive(name string) string {
	code := strings.ToUpper(name)
	for _, ch := range []string{" ", "/", "(", ")", "-", "'"} {
		code = strings.ReplaceAll(code, ch, "")
	}
	code = strings.TrimSpace(code)

	for len(code) < MaxLength {
		code = "0" + code
	}
	return code
}

// PNG renders the barcode value as a Code 39 raster image.
func PNG(code string) ([]byte, error) {
	bc, err := encode(code)
	if err != nil {
		return nil, err
	}

	scaled, err := barcode.Scale(bc, bc.Bounds().Dx()*pngScale, pngHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to encode barcode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SVG renders the barcode value as a Code 39 vector image. The module
// runs come from the same encoder as PNG so both artifacts agree.
func SVG(code string) ([]byte, error) {
	bc, err := encode(code)
	if err != nil {
		return nil, err
	}

	width := bc.Bounds().Dx()
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, svgHeight, width, svgHeight)
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="#ffffff"/>`, width, svgHeight)

	// The unscaled barcode is one pixel high: every black pixel run on
	// row zero is one bar.
	runStart := -1
	for x := 0; x <= width; x++ {
		bar := false
		if x < width {
			r, g, b, _ := bc.At(x, 0).RGBA()
			bar = r == 0 && g == 0 && b == 0
		}
		if bar && runStart < 0 {
			runStart = x
		} else if !bar && runStart >= 0 {
			fmt.Fprintf(&buf, `<rect x="%d" y="0" width="%d" height="%d" fill="#000000"/>`,
				runStart, x-runStart, svgHeight)
			runStart = -1
		}
	}
	buf.WriteString(`</svg>`)
	return buf.Bytes(), nil
}

func encode(code string) (barcode.Barcode, error) {
	bc, err := code39.Encode(code, false, false)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q as code 39: %w", code, err)
	}
	return bc, nil
}

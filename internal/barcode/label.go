package barcode

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Label page geometry in millimeters, sized for 62mm label stock.
const (
	labelWidth  = 62.0
	labelHeight = 29.0
	labelMargin = 2.0
)

// Label composes the printable PDF label: the raster barcode image with
// the item name and a descriptive line underneath. Output bytes are
// deterministic for deterministic inputs; the creation date is pinned
// so re-uploads of an unchanged label are byte-identical.
func Label(pngData []byte, code, name, description string) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: labelWidth, Ht: labelHeight},
	})
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetMargins(labelMargin, labelMargin, labelMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("barcode", opts, bytes.NewReader(pngData))
	pdf.ImageOptions("barcode", labelMargin, labelMargin, labelWidth-2*labelMargin, 14, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(labelMargin, 17)
	pdf.CellFormat(labelWidth-2*labelMargin, 3, code, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetX(labelMargin)
	pdf.CellFormat(labelWidth-2*labelMargin, 3, name, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetX(labelMargin)
	pdf.CellFormat(labelWidth-2*labelMargin, 3, description, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render barcode label: %w", err)
	}
	return buf.Bytes(), nil
}

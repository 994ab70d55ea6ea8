package models

// Synced is implemented by every entity kept in step with the record
// store. (company id, name) is the natural key used for upsert, and the
// external record id is write-back-only: it is persisted so the record
// store row can be correlated later, never read to drive dedup.
type Synced interface {
	TableName() string
	GetCompanyID() int
	SetCompanyID(id int)
	GetName() string
	SetName(name string)
	GetExternalRecordID() string
	SetExternalRecordID(id string)
}

// Barcoded is the subset of synced entities that carry a derived barcode
// and its generated artifacts.
type Barcoded interface {
	Synced
	GetBarcode() string
	SetBarcode(code string)
	SetBarcodePNG(url string)
	SetBarcodeSVG(url string)
	SetBarcodeLabel(url string)
	// LabelDescription is the free-text line printed under the barcode.
	LabelDescription() string
	// ArtifactBaseName is the file name stem for uploaded artifacts.
	ArtifactBaseName() string
	// GetBarcodeLabel returns the stored printable-label URL.
	GetBarcodeLabel() string
}

package models

// WorkbookData is the loader's output: every sheet of the source as a raw,
// header-less grid. Immutable once loaded.
type WorkbookData struct {
	// BookName is the source file name (no path).
	BookName string `json:"book_name"`
	// SheetNames holds the trimmed sheet names in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Grids maps trimmed sheet name to raw grid. When two sheet names
	// collide after trimming, the later sheet wins.
	Grids map[string]RawGrid `json:"grids"`
}

// Grid looks up a sheet's raw grid by trimmed name.
func (w *WorkbookData) Grid(name string) (RawGrid, bool) {
	g, ok := w.Grids[name]
	return g, ok
}

// WorkbookReport is the analysis result for a whole workbook.
type WorkbookReport struct {
	// BookName is the source file name (no path).
	BookName string `json:"book_name"`
	// SheetNames holds the sheet names in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Sheets maps sheet name to its analysis result.
	Sheets map[string]SheetReport `json:"sheets"`
}

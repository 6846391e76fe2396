package classify

// EÜR form line numbers for the closed set of category codes. The table
// is static reference data; anything unmapped lands on LineOther so a
// report can always be produced.
const (
	LineIncomeStandard = 14 // umsatzsteuerpflichtige Betriebseinnahmen
	LineIncomeReduced  = 15
	LineIncomeExempt   = 16
	LinePrivateUse     = 18

	LineWaren           = 24
	LineFremdleistungen = 25
	LinePersonal        = 26
	LineVorsteuer       = 27
	LineMiete           = 28
	LineAfA             = 30
	LineGWG             = 31
	LineTelefon         = 32
	LineReise           = 33
	LineFortbildung     = 34
	LineVersicherung    = 35

	// LineOther is the residual line for unmapped categories.
	LineOther = 51
)

var euerLines = map[string]int{
	"erloese_19":         LineIncomeStandard,
	"erloese_7":          LineIncomeReduced,
	"erloese_steuerfrei": LineIncomeExempt,
	"privatnutzung":      LinePrivateUse,

	"waren":           LineWaren,
	"fremdleistungen": LineFremdleistungen,
	"personal":        LinePersonal,
	"vorsteuer":       LineVorsteuer,
	"miete":           LineMiete,
	"afa":             LineAfA,
	"gwg":             LineGWG,
	"telefon":         LineTelefon,
	"reise":           LineReise,
	"fortbildung":     LineFortbildung,
	"versicherung":    LineVersicherung,
}

// EuerLine maps a category code to its EÜR form line, falling back to
// LineOther for unknown codes.
func EuerLine(category string) int {
	if line, ok := euerLines[category]; ok {
		return line
	}
	return LineOther
}

package token

var keywords = map[string]Kind{
	"import":   KwImport,
	"declare":  KwDeclare,
	"with":     KwWith,
	"letrec":   KwLetrec,
	"case":     KwCase,
	"hslider":  KwHSlider,
	"vslider":  KwVSlider,
	"nentry":   KwNEntry,
	"button":   KwButton,
	"checkbox": KwCheckbox,
	"hgroup":   KwHGroup,
	"vgroup":   KwVGroup,
	"tgroup":   KwTGroup,
	"rdtable":  KwRdTable,
	"rwtable":  KwRwTable,
	"route":    KwRoute,
	"waveform": KwWaveform,
	"par":      KwPar,
	"seq":      KwSeq,
	"sum":      KwSum,
	"prod":     KwProd,
}

// LookupKeyword returns the keyword kind for an identifier spelling.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

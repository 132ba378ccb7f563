package latex

import "fmt"

// Encoder answers whether text is representable in the active output
// encoding. LatexString returns the encoded form plus the characters that
// needed an engine-specific escape; a non-empty second return means the
// sort key may not sort where the user expects.
type Encoder interface {
	Name() string
	LatexString(s string) (latexed, uncodable string)
}

// Unicode passes text through untouched; every character is codable.
type Unicode struct{}

func (Unicode) Name() string { return "utf8" }

func (Unicode) LatexString(s string) (string, string) {
	return s, ""
}

// ASCII encodes common accented letters as TeX accent macros and falls
// back to a \char escape for everything else outside 7-bit ASCII.
type ASCII struct{}

func (ASCII) Name() string { return "ascii" }

// accentMacros maps the accented letters that have a plain TeX spelling.
var accentMacros = map[rune]string{
	'á': `\'a`, 'à': "\\`a", 'â': `\^a`, 'ä': `\"a`, 'ã': `\~a`,
	'é': `\'e`, 'è': "\\`e", 'ê': `\^e`, 'ë': `\"e`,
	'í': `\'i`, 'ì': "\\`i", 'î': `\^i`, 'ï': `\"i`,
	'ó': `\'o`, 'ò': "\\`o", 'ô': `\^o`, 'ö': `\"o`, 'õ': `\~o`,
	'ú': `\'u`, 'ù': "\\`u", 'û': `\^u`, 'ü': `\"u`,
	'ñ': `\~n`, 'ç': `\c{c}`, 'ß': `\ss{}`,
	'Á': `\'A`, 'À': "\\`A", 'Â': `\^A`, 'Ä': `\"A`, 'Ã': `\~A`,
	'É': `\'E`, 'È': "\\`E", 'Ê': `\^E`, 'Ë': `\"E`,
	'Í': `\'I`, 'Ì': "\\`I", 'Î': `\^I`, 'Ï': `\"I`,
	'Ó': `\'O`, 'Ò': "\\`O", 'Ô': `\^O`, 'Ö': `\"O`, 'Õ': `\~O`,
	'Ú': `\'U`, 'Ù': "\\`U", 'Û': `\^U`, 'Ü': `\"U`,
	'Ñ': `\~N`, 'Ç': `\c{C}`,
}

func (ASCII) LatexString(s string) (string, string) {
	var latexed, uncodable []rune
	for _, r := range s {
		if r < 0x80 {
			latexed = append(latexed, r)
			continue
		}
		if m, ok := accentMacros[r]; ok {
			latexed = append(latexed, []rune(m)...)
			continue
		}
		latexed = append(latexed, []rune(fmt.Sprintf(`\char"%04X`, r))...)
		uncodable = append(uncodable, r)
	}
	return string(latexed), string(uncodable)
}

// EncoderByName resolves a configured encoding name, defaulting to Unicode.
func EncoderByName(name string) Encoder {
	switch name {
	case "ascii", "latin1":
		return ASCII{}
	default:
		return Unicode{}
	}
}

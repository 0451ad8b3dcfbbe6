package ds9

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// HeadLexer tokenizes the shape part of a region statement, everything
// before the metadata '#'
var HeadLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	// Text arguments, e.g. text(1,2,{Hello})
	{Name: "Brace", Pattern: `\{[^}]*\}`},
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},

	// Numbers with optional unit suffix, sexagesimal values,
	// arcsec/arcmin lengths (12.5", 3')
	{Name: "Value", Pattern: `[-+]?[0-9.][^\s,()]*`},

	// Annulus count shorthand, e.g. n=4 (must come before Ident)
	{Name: "Count", Pattern: `[A-Za-z_][A-Za-z0-9_]*=[^\s,()]*`},

	// Region keywords and frame names (must come after Value)
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},

	// Include/exclude marker
	{Name: "Sign", Pattern: `[-+]`},

	{Name: "Punct", Pattern: `[(),]`},
})

// MetaLexer tokenizes the key=value block after '#'
var MetaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Key", Pattern: `[A-Za-z_][A-Za-z0-9_]*=`},
	{Name: "Brace", Pattern: `\{[^}]*\}`},
	{Name: "Quoted", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Word", Pattern: `[^\s"'{}][^\s{}]*`},
})

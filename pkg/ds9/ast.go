package ds9

import (
	"strings"
)

// statement is the shape part of one region statement
// Example: -circle(10:20:30.1,+43:12:01,3") or circle 188.5 12.03 1"
type statement struct {
	Sign    string    `@Sign?`
	Keyword string    `@Ident`
	Args    *argBlock `@@?`
}

// argBlock holds either a parenthesized or a space separated argument list
type argBlock struct {
	Paren *parenArgs `  @@`
	Bare  []*arg     `| @@+`
}

type parenArgs struct {
	Args []*arg `"(" ( @@ ( ","? @@ )* )? ")"`
}

type arg struct {
	Value string `@( Value | Count | Ident | Brace | String )`
}

// values returns the raw argument tokens in order
func (s *statement) values() []string {
	if s.Args == nil {
		return nil
	}
	args := s.Args.Bare
	if s.Args.Paren != nil {
		args = s.Args.Paren.Args
	}
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.Value
	}
	return out
}

// metaBlock is the key=value list following '#'
// Example: color=green dashlist=8 3 font="helvetica 10 normal roman" text={Hi}
type metaBlock struct {
	Items []*metaItem `@@*`
}

type metaItem struct {
	Pair *metaPair `  @@`
	Word *string   `| @( Word | Brace | Quoted )`
}

type metaPair struct {
	Key   string     `@Key`
	Value *metaValue `@@?`
}

type metaValue struct {
	Brace  *string  `  @Brace`
	Quoted *string  `| @Quoted`
	Words  []string `| @Word+`
}

func (p *metaPair) key() string {
	return strings.TrimSuffix(p.Key, "=")
}

// isEnclosed reports whether tok is wrapped in braces or quotes
func isEnclosed(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	switch tok[0] {
	case '{':
		return tok[len(tok)-1] == '}'
	case '"', '\'':
		return tok[len(tok)-1] == tok[0]
	}
	return false
}

// unquote strips one level of braces or quotes
func unquote(tok string) string {
	if isEnclosed(tok) {
		return tok[1 : len(tok)-1]
	}
	return tok
}

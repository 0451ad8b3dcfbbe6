// Package ds9 reads and writes SAOImage DS9 region files.
//
// A region file is a sequence of lines holding coordinate-system
// declarations (fk5, galactic, image, ...), "global" metadata defaults and
// region statements such as
//
//	-circle(10:20:30.1,+43:12:01,3") # color=red text={M31}
//
// Parsing produces a ShapeList of untyped shapes with units resolved, which
// converts to typed regions via ShapeList.ToRegions. Write renders regions
// back to DS9 text.
package ds9

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/conormcp/regions/pkg/coords"
	"github.com/conormcp/regions/pkg/regions"
)

// Parser reads DS9 region text. A Parser holds no per-parse state and may be
// used from several goroutines at once.
type Parser struct {
	head   *participle.Parser[statement]
	meta   *participle.Parser[metaBlock]
	policy ErrorPolicy
	logger *slog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithErrors sets the policy for unsupported or malformed shapes
func WithErrors(policy ErrorPolicy) Option {
	return func(p *Parser) {
		p.policy = policy
	}
}

// WithLogger sets the logger that receives warnings under the Warn policy
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a new DS9 parser instance
func NewParser(opts ...Option) (*Parser, error) {
	head, err := participle.Build[statement](
		participle.Lexer(HeadLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build shape parser: %w", err)
	}

	meta, err := participle.Build[metaBlock](
		participle.Lexer(MetaLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build metadata parser: %w", err)
	}

	p := &Parser{
		head:   head,
		meta:   meta,
		policy: Strict,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Parse parses region text from a reader
func (p *Parser) Parse(r io.Reader) (*ShapeList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return p.ParseString(string(data))
}

// ParseFile parses a region file from a file path
func (p *Parser) ParseFile(filename string) (*ShapeList, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// ParseString parses region text. Under the Warn and Ignore policies
// unsupported or malformed shapes are skipped; syntax errors and sky
// coordinates without a coordinate system always fail.
func (p *Parser) ParseString(input string) (*ShapeList, error) {
	st := &parseState{result: &ShapeList{}}
	for _, line := range splitLines(input) {
		if err := p.parseLine(st, line); err != nil {
			return nil, err
		}
	}
	st.result.GlobalMeta = st.global.Clone()
	return st.result, nil
}

// Parse is a convenience wrapper parsing text with the given policy
func Parse(text string, policy ErrorPolicy) (*ShapeList, error) {
	p, err := NewParser(WithErrors(policy))
	if err != nil {
		return nil, err
	}
	return p.ParseString(text)
}

// ReadFile parses a region file and converts its shapes to regions
func ReadFile(filename string, policy ErrorPolicy) (*regions.List, *ShapeList, error) {
	p, err := NewParser(WithErrors(policy))
	if err != nil {
		return nil, nil, err
	}
	shapes, err := p.ParseFile(filename)
	if err != nil {
		return nil, nil, err
	}
	list, err := shapes.ToList()
	if err != nil {
		return nil, shapes, err
	}
	return list, shapes, nil
}

// parseState is the mutable state of one parse. An empty frame means no
// coordinate system has been declared yet.
type parseState struct {
	frame  coords.Frame
	global regions.Meta
	result *ShapeList
}

// parseLine handles one logical line, which may hold several ';' separated
// statements. A frame named ahead of other statements on the same line
// applies to that line only.
func (p *Parser) parseLine(st *parseState, line physicalLine) error {
	stmts := splitStatements(line.text)
	frame := st.frame

	for i, raw := range stmts {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		if firstWord(text) == "global" {
			if err := p.parseGlobal(st, line, text); err != nil {
				return err
			}
			continue
		}

		head, tail, _ := splitComment(text)
		head = strings.TrimSpace(head)

		if head == "" {
			body := strings.TrimSpace(tail)
			if st.result.Header == "" && strings.HasPrefix(strings.ToLower(body), "region file format") {
				st.result.Header = body
			}
			if h, rest, ok := commentedShape(body); ok {
				if shape, perr := p.buildShape(st, frame, line, h, rest); perr == nil {
					st.result.Shapes = append(st.result.Shapes, shape)
				}
			}
			continue
		}

		if f, ok := coords.ParseFrame(head); ok && !strings.ContainsAny(head, "( ") {
			frame = f
			if !laterStatements(stmts[i+1:]) {
				st.frame = f
			}
			continue
		}

		if err := p.parseRegion(st, frame, line, head, tail); err != nil {
			return err
		}
	}
	return nil
}

// laterStatements reports whether any non-empty statement follows
func laterStatements(stmts []string) bool {
	for _, s := range stmts {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// commentedShape recognises DS9's commented text labels, e.g.
// "# text(10,10) text={Hello}". The caller keeps the line as an ordinary
// comment unless the statement builds a valid shape.
func commentedShape(body string) (head, tail string, ok bool) {
	word := firstWord(body)
	t, known := LookupRegionType(word)
	if !known || !t.Supported() {
		return "", "", false
	}
	if !strings.HasPrefix(strings.TrimSpace(body[len(word):]), "(") {
		return "", "", false
	}
	return splitShapeTail(body)
}

func (p *Parser) parseGlobal(st *parseState, line physicalLine, text string) error {
	body := strings.TrimSpace(text)[len("global"):]
	meta, _, err := p.parseMeta(body, false)
	if err != nil {
		return &ParseError{Kind: SyntaxError, Line: line.num, Text: line.text, Msg: "invalid global line", Err: err}
	}
	st.global.Merge(meta)
	return nil
}

// parseRegion builds one Shape from a region statement, applying the error
// policy to recoverable problems
func (p *Parser) parseRegion(st *parseState, frame coords.Frame, line physicalLine, head, tail string) error {
	shape, perr := p.buildShape(st, frame, line, head, tail)
	if perr != nil {
		if perr.Fatal() {
			return perr
		}
		return p.recover(st, perr)
	}
	st.result.Shapes = append(st.result.Shapes, shape)
	return nil
}

func (p *Parser) buildShape(st *parseState, frame coords.Frame, line physicalLine, head, tail string) (*Shape, *ParseError) {
	head, composite := stripComposite(head)

	stmt, err := p.head.ParseString("", head)
	if err != nil {
		return nil, &ParseError{Kind: SyntaxError, Line: line.num, Text: line.text, Msg: "invalid region statement", Err: err}
	}

	name := strings.ToLower(stmt.Keyword)
	fail := func(kind ErrorKind, msg string, cause error) *ParseError {
		return &ParseError{
			Kind:       kind,
			Line:       line.num,
			Text:       line.text,
			RegionType: name,
			Msg:        msg,
			Err:        cause,
		}
	}

	rtype, known := LookupRegionType(name)
	switch {
	case !known:
		return nil, fail(UnsupportedTypeError,
			fmt.Sprintf("region type %q was found, but it is not one of the supported region types", name), nil)
	case rtype.Composite():
		return nil, fail(UnsupportedTypeError,
			fmt.Sprintf("region type %q is a composite of several shapes and is skipped", name), nil)
	case !rtype.Supported():
		return nil, fail(UnsupportedTypeError,
			fmt.Sprintf("region type %q has no single-shape equivalent and is skipped", name), nil)
	}

	args := stmt.values()
	if countForm(args) {
		return nil, fail(UnsupportedTypeError,
			fmt.Sprintf("%s with an n= count is a multi-annulus region and is skipped", name), nil)
	}
	var text string
	if rtype == TypeText && len(args) == 3 && isEnclosed(args[2]) {
		text = unquote(args[2])
		args = args[:2]
	}

	isComposite, err := checkArity(rtype, len(args))
	if err != nil {
		return nil, fail(ArityError, "wrong number of arguments", err)
	}
	if isComposite {
		return nil, fail(UnsupportedTypeError,
			fmt.Sprintf("%s with %d arguments is a multi-annulus region and is skipped", name, len(args)), nil)
	}

	if frame == "" {
		for _, a := range args {
			if skyLike(a) {
				return nil, fail(FrameError,
					fmt.Sprintf("sky coordinate %q found before any coordinate system was declared", a), nil)
			}
		}
		frame = coords.Image
	}
	if !frame.Supported() {
		return nil, fail(UnsupportedTypeError, fmt.Sprintf("coordinate system %q is not supported", frame), nil)
	}

	values := make([]coords.Quantity, len(args))
	for i, role := range roles(rtype, len(args)) {
		q, err := resolveArg(args[i], role, frame)
		if err != nil {
			return nil, fail(ArityError, fmt.Sprintf("invalid %s argument %d", name, i+1), err)
		}
		values[i] = q
	}

	local, comment, err := p.parseMeta(tail, true)
	if err != nil {
		if _, dup := err.(*duplicateKeyError); dup {
			return nil, fail(ArityError, "invalid metadata", err)
		}
		return nil, fail(SyntaxError, "invalid metadata", err)
	}
	if text != "" && !local.Has("text") {
		local.Set("text", regions.StringValue(text))
	}

	meta := st.global.Clone()
	meta.Merge(local)

	shape := &Shape{
		Type:      rtype,
		Coord:     values,
		CoordSys:  frame,
		Meta:      meta,
		Composite: composite,
		Include:   include(stmt.Sign, meta),
		Comment:   comment,
		Line:      line.num,
	}
	if err := shape.validateUnits(); err != nil {
		return nil, fail(ArityError, "argument units do not match the coordinate system", err)
	}
	return shape, nil
}

// include resolves the inclusion flag: an explicit sign wins, then the
// merged include key, then true
func include(sign string, meta regions.Meta) bool {
	switch sign {
	case "-":
		return false
	case "+":
		return true
	}
	if v, ok := meta.Get("include"); ok {
		if b, isBool := v.Bool(); isBool {
			return b
		}
	}
	return true
}

// recover applies the error policy to a recoverable problem
func (p *Parser) recover(st *parseState, perr *ParseError) error {
	switch p.policy {
	case Warn:
		st.result.Warnings = append(st.result.Warnings, perr)
		p.logger.Warn(perr.Msg, "line", perr.Line, "type", perr.RegionType, "text", perr.Text)
		return nil
	case Ignore:
		return nil
	}
	return perr
}

package ds9

import (
	"fmt"
	"strings"

	"github.com/conormcp/regions/pkg/regions"
)

// Keys that DS9 stores as booleans
var boolKeys = map[string]bool{
	"include": true,
}

// Keys that may repeat within one statement
var repeatableKeys = map[string]bool{
	"tag": true,
}

type duplicateKeyError struct {
	key string
}

func (e *duplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate metadata key %q", e.key)
}

// parseMeta parses a key=value block. Text that is not part of a pair is
// returned as the comment. With unique set, a repeated key (other than tag)
// is an error; otherwise the later value wins.
func (p *Parser) parseMeta(src string, unique bool) (regions.Meta, string, error) {
	var meta regions.Meta
	if strings.TrimSpace(src) == "" {
		return meta, "", nil
	}

	block, err := p.meta.ParseString("", src)
	if err != nil {
		return meta, "", err
	}

	var comment []string
	seen := make(map[string]bool)
	for _, item := range block.Items {
		if item.Pair == nil {
			comment = append(comment, *item.Word)
			continue
		}

		key := item.Pair.key()
		value, rest := pairValue(item.Pair.Value)
		comment = append(comment, rest...)

		v := regions.StringValue(value)
		if boolKeys[key] {
			v = normaliseBool(value)
		}

		switch {
		case repeatableKeys[key]:
			meta.Add(key, v)
		case seen[key] && unique:
			return meta, "", &duplicateKeyError{key: key}
		default:
			meta.Set(key, v)
		}
		seen[key] = true
	}
	return meta, strings.Join(comment, " "), nil
}

// pairValue extracts the value of a pair following DS9's conventions:
// a braced or quoted string, a run of numbers (dashlist=8 3), or one word
// optionally followed by a number (point=cross 11). Left-over words are
// returned separately.
func pairValue(v *metaValue) (string, []string) {
	switch {
	case v == nil:
		return "", nil
	case v.Brace != nil:
		return unquote(*v.Brace), nil
	case v.Quoted != nil:
		return unquote(*v.Quoted), nil
	}

	words := v.Words
	n := 1
	if numeric(words[0]) {
		for n < len(words) && numeric(words[n]) {
			n++
		}
	} else if len(words) > 1 && numeric(words[1]) {
		n = 2
	}
	return strings.Join(words[:n], " "), words[n:]
}

// normaliseBool converts DS9's 0/1 flags to booleans; other text is kept
func normaliseBool(s string) regions.Value {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return regions.BoolValue(true)
	case "0", "false", "no":
		return regions.BoolValue(false)
	}
	return regions.StringValue(s)
}

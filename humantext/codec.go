package humantext

import (
	"strings"

	"github.com/hexdraft/zdoc"
	"github.com/hexdraft/zdoc/errs"
)

// Parse decodes Human-format bytes into a Document (§4.2 parser
// contract). Options must match whatever Emit used to produce data when
// non-default glyphs or a section name map are in play.
func Parse(data []byte, opts ...Option) (*zdoc.Document, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	doc := zdoc.New()
	lines := strings.Split(string(data), "\n")

	var curID string
	var curSchema []string
	var curRows []zdoc.Row
	inSection := false

	flush := func() error {
		if !inSection {
			return nil
		}

		return doc.AddSection(zdoc.Section{ID: curID, Schema: curSchema, Rows: curRows})
	}

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "["):
			if err := flush(); err != nil {
				return nil, err
			}
			id, schema, err := parseSectionHeaderLine(cfg, line, lineNo)
			if err != nil {
				return nil, err
			}
			curID, curSchema, curRows = id, schema, nil
			inSection = true
		case !inSection:
			key, val, err := parseContextLine(cfg, line, lineNo)
			if err != nil {
				return nil, err
			}
			doc.Context = append(doc.Context, zdoc.ContextEntry{Key: key, Value: val})
		default:
			row, err := parseRowLine(cfg, line)
			if err != nil {
				return nil, err
			}
			if len(row) != len(curSchema) {
				return nil, &errs.SchemaMismatch{Expected: len(curSchema), Got: len(row)}
			}
			curRows = append(curRows, row)
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

func parseContextLine(cfg *Config, line string, lineNo int) (string, zdoc.Value, error) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", zdoc.Value{}, &errs.ParseError{
			Line: lineNo, Column: len(line) + 1,
			Message: "expected '<key> = <value>'",
			Hint:    "context lines must contain '='",
		}
	}

	key := strings.TrimRight(line[:idx], " \t")
	if key == "" {
		return "", zdoc.Value{}, &errs.ParseError{Line: lineNo, Column: 1, Message: "context line has an empty key"}
	}

	val := strings.TrimPrefix(line[idx+1:], " ")
	v, err := decodeValue(cfg, val)
	if err != nil {
		return "", zdoc.Value{}, err
	}

	return key, v, nil
}

func parseSectionHeaderLine(cfg *Config, line string, lineNo int) (id string, schema []string, err error) {
	closeIdx := strings.IndexByte(line, ']')
	if closeIdx < 0 {
		return "", nil, &errs.ParseError{Line: lineNo, Column: len(line), Message: "unterminated section header", Hint: "section headers must close with ']'"}
	}

	name := line[1:closeIdx]
	if name == "" {
		return "", nil, &errs.ParseError{Line: lineNo, Column: 2, Message: "section header has an empty name"}
	}
	if strings.Count(name, ".") > 1 {
		return "", nil, &errs.ParseError{Line: lineNo, Column: 2, Message: "section name nests deeper than parent.child", Hint: "use at most one dot in a section name"}
	}

	id = mapSectionName(cfg, name, true)

	rest := strings.TrimSpace(line[closeIdx+1:])
	if rest == "" {
		return id, nil, nil
	}
	if !strings.HasPrefix(rest, "=") {
		return "", nil, &errs.ParseError{Line: lineNo, Column: closeIdx + 2, Message: "expected '= <col1> | <col2> | ...' after section name"}
	}

	for _, tok := range strings.Split(strings.TrimSpace(rest[1:]), "|") {
		schema = append(schema, mapSectionName(cfg, strings.TrimSpace(tok), true))
	}

	return id, schema, nil
}

func parseRowLine(cfg *Config, line string) (zdoc.Row, error) {
	fields := splitRespectingQuotes(line, '|')
	row := make(zdoc.Row, len(fields))
	for i, f := range fields {
		v, err := decodeValue(cfg, strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		row[i] = v
	}

	return row, nil
}

// mapSectionName applies cfg.SectionNameMap (§6.7 section_name_map), per
// dot-separated segment, when one is configured; otherwise name passes
// through unchanged, since the Document model already stores section and
// column identifiers in their canonical (Human-equivalent) form.
func mapSectionName(cfg *Config, name string, expand bool) string {
	if cfg.SectionNameMap == nil {
		return name
	}

	segs := strings.SplitN(name, ".", 2)
	for i, s := range segs {
		if expand {
			segs[i] = cfg.SectionNameMap.Expand("", s)
		} else {
			segs[i] = cfg.SectionNameMap.Contract("", s)
		}
	}

	return strings.Join(segs, ".")
}

// Emit encodes a Document as Human-format bytes (§4.2), aligning context
// '=' signs and table columns per §6.7.
func Emit(doc *zdoc.Document, opts ...Option) ([]byte, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	var b strings.Builder

	if len(doc.Context) > 0 {
		padWidth := cfg.MinKeyPadding
		for _, c := range doc.Context {
			if len(c.Key)+1 > padWidth {
				padWidth = len(c.Key) + 1
			}
		}
		for _, c := range doc.Context {
			b.WriteString(c.Key)
			b.WriteString(strings.Repeat(" ", padWidth-len(c.Key)))
			b.WriteString("= ")
			b.WriteString(encodeValue(cfg, doc, c.Value))
			b.WriteByte('\n')
		}
	}

	for _, sec := range doc.Sections {
		name := mapSectionName(cfg, sec.ID, false)
		b.WriteByte('[')
		b.WriteString(name)
		b.WriteByte(']')
		if len(sec.Schema) > 0 {
			b.WriteString(" = ")
			cols := make([]string, len(sec.Schema))
			for i, c := range sec.Schema {
				cols[i] = mapSectionName(cfg, c, false)
			}
			b.WriteString(strings.Join(cols, " | "))
		}
		b.WriteByte('\n')

		rendered := make([][]string, len(sec.Rows))
		widths := make([]int, len(sec.Schema))
		for r, row := range sec.Rows {
			cells := make([]string, len(row))
			for c, v := range row {
				cells[c] = encodeValue(cfg, doc, v)
				if c < len(widths) && len(cells[c]) > widths[c] {
					widths[c] = len(cells[c])
				}
			}
			rendered[r] = cells
		}

		for _, cells := range rendered {
			parts := make([]string, len(cells))
			for c, cell := range cells {
				if c < len(cells)-1 && c < len(widths) {
					cell += strings.Repeat(" ", widths[c]-len(cell))
				}
				parts[c] = cell
			}
			b.WriteString(strings.Join(parts, " | "))
			b.WriteByte('\n')
		}
	}

	return []byte(b.String()), nil
}

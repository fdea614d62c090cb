package llmtext

import (
	"strconv"
	"strings"

	"github.com/hexdraft/zdoc"
	"github.com/hexdraft/zdoc/abbrev"
	"github.com/hexdraft/zdoc/errs"
	"github.com/hexdraft/zdoc/internal/base62"
)

// Parse decodes LLM-format bytes into a Document (§4.1 parser contract).
func Parse(data []byte) (*zdoc.Document, error) {
	doc := zdoc.New()
	lines := strings.Split(string(data), "\n")

	var curID string
	var curSchema []string
	var curColTypes []string
	var curRows []zdoc.Row
	inSection := false

	flush := func() error {
		if !inSection {
			return nil
		}
		if err := doc.AddSection(zdoc.Section{ID: curID, Schema: curSchema, Rows: curRows}); err != nil {
			return err
		}
		inSection = false
		curID, curSchema, curColTypes, curRows = "", nil, nil, nil

		return nil
	}

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "#c:"):
			if err := parseContextLine(doc, line[3:], lineNo); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "#:"):
			if err := parseRefLine(doc, line[2:], lineNo); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "#"):
			if err := flush(); err != nil {
				return nil, err
			}
			id, schema, colTypes, err := parseSectionHeader(line, lineNo)
			if err != nil {
				return nil, err
			}
			curID, curSchema, curColTypes = id, schema, colTypes
			inSection = true
		default:
			if !inSection {
				return nil, &errs.ParseError{
					Line: lineNo, Column: 1,
					Message: "data row appears before any section header",
					Hint:    "every row must follow a #id(...) section header",
				}
			}
			row, err := parseRow(doc, line, curColTypes)
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

func parseContextLine(doc *zdoc.Document, rest string, lineNo int) error {
	for _, pair := range splitEscaped(rest, ';') {
		if pair == "" {
			continue
		}
		parts := splitEscaped(pair, '|')
		if len(parts) != 2 {
			return &errs.MalformedContext{Msg: "expected <key>|<value> at line " + strconv.Itoa(lineNo)}
		}

		key := abbrev.Default().Expand("", unescape(parts[0]))
		val, err := decodeValue(parts[1], "", doc)
		if err != nil {
			return err
		}

		doc.Context = append(doc.Context, zdoc.ContextEntry{Key: key, Value: val})
	}

	return nil
}

func parseRefLine(doc *zdoc.Document, rest string, lineNo int) error {
	parts := splitEscaped(rest, '|')
	if len(parts) != 2 {
		return &errs.MalformedContext{Msg: "expected <key>|<value> reference definition at line " + strconv.Itoa(lineNo)}
	}

	doc.AddReference(unescape(parts[0]), unescape(parts[1]))

	return nil
}

func parseSectionHeader(line string, lineNo int) (id string, schema []string, colTypes []string, err error) {
	open := strings.IndexByte(line, '(')
	if open < 0 {
		return "", nil, nil, &errs.InvalidSigil{Pos: lineNo}
	}
	if !strings.HasSuffix(line, ")") {
		return "", nil, nil, &errs.ParseError{Line: lineNo, Column: len(line), Message: "unterminated section header", Hint: "section headers must close with ')'"}
	}

	id = line[1:open]
	if id == "" {
		return "", nil, nil, &errs.ParseError{Line: lineNo, Column: 2, Message: "section header has an empty id"}
	}
	if strings.Count(id, ".") > 1 {
		return "", nil, nil, &errs.ParseError{Line: lineNo, Column: 2, Message: "section id nests deeper than parent.child", Hint: "use at most one dot in a section identifier"}
	}

	inner := line[open+1 : len(line)-1]
	schema = nil
	colTypes = nil
	if inner != "" {
		for _, tok := range splitEscaped(inner, '|') {
			colType := ""
			name := tok
			if strings.HasSuffix(name, hexColumnType) {
				colType = hexColumnType
				name = name[:len(name)-len(hexColumnType)]
			}
			name = abbrev.Default().Expand("", unescape(name))
			schema = append(schema, name)
			colTypes = append(colTypes, colType)
		}
	}

	return id, schema, colTypes, nil
}

func parseRow(doc *zdoc.Document, line string, colTypes []string) (zdoc.Row, error) {
	fields := splitEscaped(line, '|')
	row := make(zdoc.Row, len(fields))
	for i, f := range fields {
		colType := ""
		if i < len(colTypes) {
			colType = colTypes[i]
		}
		v, err := decodeValue(f, colType, doc)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}

	return row, nil
}

// Emit encodes a Document as LLM-format bytes (§4.1 emitter contract).
func Emit(doc *zdoc.Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	assignments, refKeys := synthesizeRefKeys(doc)

	var b strings.Builder

	if len(doc.Context) > 0 {
		parts := make([]string, len(doc.Context))
		for i, c := range doc.Context {
			key := escapeString(abbrev.Default().Contract("", c.Key))
			val := encodeValue(doc, c.Value, "", refKeys)
			parts[i] = key + "|" + val
		}
		b.WriteString("#c:" + strings.Join(parts, ";") + "\n")
	}

	for _, a := range assignments {
		b.WriteString("#:" + a.Key + "|" + escapeString(a.Content) + "\n")
	}

	for _, sec := range doc.Sections {
		colTypes := decideColTypes(sec)

		colTokens := make([]string, len(sec.Schema))
		for i, name := range sec.Schema {
			tok := escapeString(abbrev.Default().Contract("", name))
			if colTypes[i] == hexColumnType {
				tok += hexColumnType
			}
			colTokens[i] = tok
		}
		b.WriteString("#" + sec.ID + "(" + strings.Join(colTokens, "|") + ")\n")

		for _, row := range sec.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				colType := ""
				if i < len(colTypes) {
					colType = colTypes[i]
				}
				cells[i] = encodeValue(doc, v, colType, refKeys)
			}
			b.WriteString(strings.Join(cells, "|") + "\n")
		}
	}

	return []byte(b.String()), nil
}

// decideColTypes marks a column "%x" when every row holds a non-negative
// integral Number in that column and at least one value's base62
// rendering is strictly shorter than its decimal rendering (the
// opportunistic promotion rule of §4.1, resolved at column granularity so
// that decoding each column's tokens is unambiguous: once a column is
// base62-typed, every value in it — including ones that wouldn't
// individually have benefited — is encoded through the same bijective
// base62.Encode/Decode pair).
func decideColTypes(sec zdoc.Section) []string {
	colTypes := make([]string, len(sec.Schema))
	if len(sec.Rows) == 0 {
		return colTypes
	}

	for j := range sec.Schema {
		allNumeric := true
		promotable := false
		for _, row := range sec.Rows {
			if j >= len(row) {
				allNumeric = false

				break
			}
			n, ok := row[j].Number()
			if !ok || !isNonNegIntegral(n) {
				allNumeric = false

				break
			}
			if n > 61 && base62.ShorterThanDecimal(uint64(n)) {
				promotable = true
			}
		}
		if allNumeric && promotable {
			colTypes[j] = hexColumnType
		}
	}

	return colTypes
}

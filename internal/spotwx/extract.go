package spotwx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/tidwall/gjson"

	"github.com/gagreene/spotwx/internal/models"
)

// dataSetMarker is the assignment the provider embeds in a script block
// on table-display pages. If the provider renames the variable or changes
// the literal's delimiters, extraction reports ErrDataNotFound rather
// than guessing at the new format.
const dataSetMarker = "var aDataSet ="

// ExtractRows scans the HTML body for the script block holding the
// aDataSet array literal and converts it to forecast rows. The literal is
// JavaScript, not JSON: strings are single-quoted, so it is normalized
// token by token before parsing. Rows must have exactly seven fields.
func ExtractRows(body io.Reader) ([]models.ForecastRow, error) {
	doc, err := htmlquery.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	scripts, err := htmlquery.QueryAll(doc, "//script")
	if err != nil {
		return nil, fmt.Errorf("query scripts: %w", err)
	}

	for _, script := range scripts {
		text := htmlquery.InnerText(script)
		idx := strings.Index(text, dataSetMarker)
		if idx < 0 {
			continue
		}
		literal, err := scanArrayLiteral(text[idx+len(dataSetMarker):])
		if err != nil {
			return nil, err
		}
		normalized, err := normalizeLiteral(literal)
		if err != nil {
			return nil, err
		}
		return parseRows(normalized)
	}

	return nil, ErrDataNotFound
}

// scanArrayLiteral returns the bracket-balanced array literal at the
// start of src (after optional whitespace), brackets included. Bracket
// depth is only counted outside string values, so fields containing [ or
// ] cannot unbalance the scan.
func scanArrayLiteral(src string) (string, error) {
	start := 0
	for start < len(src) && (src[start] == ' ' || src[start] == '\t' || src[start] == '\n' || src[start] == '\r') {
		start++
	}
	if start >= len(src) || src[start] != '[' {
		return "", errors.New("aDataSet assignment is not an array literal")
	}

	depth := 0
	var quote byte // 0 outside strings, otherwise the opening quote
	for i := start; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++ // skip the escaped character
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return src[start : i+1], nil
			}
		}
	}
	return "", errors.New("aDataSet literal is not terminated")
}

// normalizeLiteral rewrites the JavaScript array literal as strict JSON.
// Single-quoted strings become double-quoted with embedded double quotes
// escaped and \' unescaped; double-quoted strings pass through untouched.
// Unlike a global quote substitution, a field value containing either
// quote character survives intact.
func normalizeLiteral(src string) (string, error) {
	var out strings.Builder
	out.Grow(len(src))

	i := 0
	for i < len(src) {
		switch src[i] {
		case '\'':
			out.WriteByte('"')
			i++
			for {
				if i >= len(src) {
					return "", errors.New("unterminated string in aDataSet literal")
				}
				c := src[i]
				if c == '\'' {
					break
				}
				if c == '\\' && i+1 < len(src) {
					if src[i+1] == '\'' {
						out.WriteByte('\'')
					} else {
						out.WriteByte('\\')
						out.WriteByte(src[i+1])
					}
					i += 2
					continue
				}
				if c == '"' {
					out.WriteString(`\"`)
				} else {
					out.WriteByte(c)
				}
				i++
			}
			out.WriteByte('"')
			i++
		case '"':
			out.WriteByte('"')
			i++
			for {
				if i >= len(src) {
					return "", errors.New("unterminated string in aDataSet literal")
				}
				c := src[i]
				out.WriteByte(c)
				if c == '\\' && i+1 < len(src) {
					out.WriteByte(src[i+1])
					i += 2
					continue
				}
				i++
				if c == '"' {
					break
				}
			}
		default:
			out.WriteByte(src[i])
			i++
		}
	}
	return out.String(), nil
}

// parseRows converts the normalized JSON array into forecast rows.
func parseRows(jsonText string) ([]models.ForecastRow, error) {
	if !gjson.Valid(jsonText) {
		return nil, errors.New("aDataSet literal is not valid after normalization")
	}
	parsed := gjson.Parse(jsonText)
	if !parsed.IsArray() {
		return nil, errors.New("aDataSet literal is not an array")
	}

	var rows []models.ForecastRow
	for i, entry := range parsed.Array() {
		if !entry.IsArray() {
			return nil, fmt.Errorf("row %d: not an array", i)
		}
		fields := entry.Array()
		if len(fields) != 7 {
			return nil, fmt.Errorf("row %d: expected 7 fields, got %d", i, len(fields))
		}
		rows = append(rows, models.ForecastRow{
			Hourly: fields[0].String(),
			Hour:   fields[1].String(),
			Temp:   fields[2].String(),
			RH:     fields[3].String(),
			WD:     fields[4].String(),
			WS:     fields[5].String(),
			Precip: fields[6].String(),
		})
	}
	return rows, nil
}

// Package toml reads and writes the small TOML subset used by the config
// file: [table] headers, key = value pairs, strings, integers, floats and
// booleans.
package toml

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Table is a parsed document or sub-table.
type Table map[string]any

// Parse decodes TOML text into nested tables.
func Parse(data string) (Table, error) {
	root := Table{}
	current := root

	for i, raw := range strings.Split(data, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			t, err := root.openTable(strings.TrimSpace(line[1 : len(line)-1]))
			if err != nil {
				return nil, &ParseError{Line: lineNum, Msg: err.Error()}
			}
			current = t
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &ParseError{Line: lineNum, Msg: "invalid syntax"}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, &ParseError{Line: lineNum, Msg: "empty key"}
		}
		if _, exists := current[key]; exists {
			return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("duplicate key %q", key)}
		}
		v, err := parseValue(strings.TrimSpace(value))
		if err != nil {
			return nil, &ParseError{Line: lineNum, Msg: err.Error()}
		}
		current[key] = v
	}
	return root, nil
}

func (t Table) openTable(name string) (Table, error) {
	if name == "" {
		return nil, fmt.Errorf("empty table name")
	}
	cur := t
	for _, k := range strings.Split(name, ".") {
		k = strings.TrimSpace(k)
		next, exists := cur[k]
		if !exists {
			nt := Table{}
			cur[k] = nt
			cur = nt
			continue
		}
		nt, ok := next.(Table)
		if !ok {
			return nil, fmt.Errorf("key %q already exists", k)
		}
		cur = nt
	}
	return cur, nil
}

// stripComment drops a trailing # comment that is not inside a string.
func stripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			if inString {
				i++
			}
		case '"':
			inString = !inString
		case '#':
			if !inString {
				return line[:i]
			}
		}
	}
	return line
}

func parseValue(value string) (any, error) {
	if strings.HasPrefix(value, `"`) {
		s, err := strconv.Unquote(value)
		if err != nil {
			return nil, fmt.Errorf("invalid string: %s", value)
		}
		return s, nil
	}
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if n, err := strconv.ParseInt(strings.ReplaceAll(value, "_", ""), 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("unrecognized value: %s", value)
}

// Sub returns the named sub-table, or nil if absent.
func (t Table) Sub(name string) Table {
	sub, _ := t[name].(Table)
	return sub
}

// String returns a string value. ok is false if the key is absent; err is
// set if the key holds another type.
func (t Table) String(key string) (v string, ok bool, err error) {
	raw, ok := t[key]
	if !ok {
		return "", false, nil
	}
	s, isStr := raw.(string)
	if !isStr {
		return "", true, fmt.Errorf("%s: expected string, got %T", key, raw)
	}
	return s, true, nil
}

func (t Table) Int(key string) (v int64, ok bool, err error) {
	raw, ok := t[key]
	if !ok {
		return 0, false, nil
	}
	n, isInt := raw.(int64)
	if !isInt {
		return 0, true, fmt.Errorf("%s: expected integer, got %T", key, raw)
	}
	return n, true, nil
}

func (t Table) Bool(key string) (v bool, ok bool, err error) {
	raw, ok := t[key]
	if !ok {
		return false, false, nil
	}
	b, isBool := raw.(bool)
	if !isBool {
		return false, true, fmt.Errorf("%s: expected boolean, got %T", key, raw)
	}
	return b, true, nil
}

// Encode writes t with top-level scalars first, then one [section] per
// sub-table, keys sorted.
func Encode(w io.Writer, t Table) error {
	var scalars, tables []string
	for k, v := range t {
		if _, ok := v.(Table); ok {
			tables = append(tables, k)
		} else {
			scalars = append(scalars, k)
		}
	}
	sort.Strings(scalars)
	sort.Strings(tables)

	for _, k := range scalars {
		if err := writeKeyValue(w, k, t[k]); err != nil {
			return err
		}
	}
	for i, name := range tables {
		if i > 0 || len(scalars) > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		sub := t[name].(Table)
		if _, err := fmt.Fprintf(w, "[%s]\n", name); err != nil {
			return err
		}
		keys := make([]string, 0, len(sub))
		for k := range sub {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, nested := sub[k].(Table); nested {
				return fmt.Errorf("%s.%s: nested tables are not supported", name, k)
			}
			if err := writeKeyValue(w, k, sub[k]); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeKeyValue(w io.Writer, key string, v any) error {
	var s string
	switch val := v.(type) {
	case string:
		s = strconv.Quote(val)
	case bool:
		s = strconv.FormatBool(val)
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case float64:
		s = strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Errorf("%s: unsupported value type %T", key, v)
	}
	_, err := fmt.Fprintf(w, "%s = %s\n", key, s)
	return err
}

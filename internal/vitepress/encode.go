package vitepress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
}

func marshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Map converts c to its generic JSON object form.
func (c Config) Map() (map[string]interface{}, error) {
	data, err := marshalJSON(c)
	if err != nil {
		return nil, err
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Override sets a single dotted path, e.g. "themeConfig.search.provider".
type Override struct {
	Path  []string
	Value interface{}
}

// ParseOverride parses "a.b.c=value". The value is decoded as JSON when it
// is valid JSON and taken as a plain string otherwise.
func ParseOverride(s string) (Override, error) {
	key, raw, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return Override{}, fmt.Errorf("override %q: want path=value", s)
	}
	path := strings.Split(key, ".")
	for _, p := range path {
		if p == "" {
			return Override{}, fmt.Errorf("override %q: empty path segment", s)
		}
	}

	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		v = raw
	}
	return Override{Path: path, Value: v}, nil
}

// ApplyOverrides sets each override on obj in order.
func ApplyOverrides(obj map[string]interface{}, overrides []Override) error {
	for _, o := range overrides {
		if err := unstructured.SetNestedField(obj, o.Value, o.Path...); err != nil {
			return fmt.Errorf("override %s: %w", strings.Join(o.Path, "."), err)
		}
	}
	return nil
}

// Encode writes obj to w in the given format.
func Encode(w io.Writer, obj map[string]interface{}, f Format) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case YAML:
		data, err = yaml.Marshal(obj)
	case JSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		err = enc.Encode(obj)
		data = buf.Bytes()
	default:
		err = fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// adjacencyFromJSON flattens a JSON object of the form
//
//	{"A": ["B", "C"], "B": "C, D", "C": null}
//
// into colon-line text. The object is walked token by token so that key
// order — which drives traversal order downstream — survives decoding.
func adjacencyFromJSON(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return "", fmt.Errorf("expected a top-level JSON object, got %v", tok)
	}

	var b strings.Builder
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return "", err
		}
		key := strings.TrimSpace(keyTok.(string))

		var val any
		if err := dec.Decode(&val); err != nil {
			return "", err
		}
		deps, err := depTokens(val)
		if err != nil {
			return "", fmt.Errorf("entry %q: %w", key, err)
		}
		writeLine(&b, key, deps)
	}
	return b.String(), nil
}

// adjacencyFromYAML does the same for a YAML mapping, walking the node tree
// directly because a plain map decode would scramble key order.
func adjacencyFromYAML(data []byte) (string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return "", err
	}
	if len(root.Content) == 0 {
		return "", nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return "", fmt.Errorf("expected a top-level YAML mapping, got %v", doc.Tag)
	}

	var b strings.Builder
	for i := 0; i+1 < len(doc.Content); i += 2 {
		keyNode, valNode := doc.Content[i], doc.Content[i+1]
		key := strings.TrimSpace(keyNode.Value)

		var val any
		if err := valNode.Decode(&val); err != nil {
			return "", err
		}
		deps, err := depTokens(val)
		if err != nil {
			return "", fmt.Errorf("entry %q: %w", key, err)
		}
		writeLine(&b, key, deps)
	}
	return b.String(), nil
}

// depTokens interprets one entry value: null/empty means no dependencies, a
// list enumerates them, and a scalar string is a comma-separated run.
func depTokens(val any) ([]string, error) {
	switch v := val.(type) {
	case nil:
		return nil, nil
	case string:
		var deps []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				deps = append(deps, s)
			}
		}
		return deps, nil
	case []any:
		var deps []string
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("dependency list holds a non-string value %v", item)
			}
			if s = strings.TrimSpace(s); s != "" {
				deps = append(deps, s)
			}
		}
		return deps, nil
	default:
		return nil, fmt.Errorf("unsupported dependency value %v", v)
	}
}

func writeLine(b *strings.Builder, key string, deps []string) {
	b.WriteString(key)
	b.WriteString(":")
	for _, d := range deps {
		b.WriteString(" ")
		b.WriteString(d)
	}
	b.WriteString("\n")
}

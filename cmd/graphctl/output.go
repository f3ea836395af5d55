package main

import (
	"encoding/json"
	"fmt"

	"github.com/elgs/gojq"
	"sigs.k8s.io/yaml"
)

// render writes v to the output stream in the selected format, narrowed by
// --query when one is set.
func (a *app) render(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if a.query != "" {
		parser, err := gojq.NewStringQuery(string(b))
		if err != nil {
			return fmt.Errorf("query %q: %w", a.query, err)
		}
		selected, err := parser.Query(a.query)
		if err != nil {
			return fmt.Errorf("query %q: %w", a.query, err)
		}
		if b, err = json.Marshal(selected); err != nil {
			return fmt.Errorf("encode query result: %w", err)
		}
	}

	var out []byte
	switch a.output {
	case "yaml":
		if out, err = yaml.JSONToYAML(b); err != nil {
			return fmt.Errorf("convert to yaml: %w", err)
		}
	default:
		if out, err = json.MarshalIndent(json.RawMessage(b), "", "  "); err != nil {
			return err
		}
		out = append(out, '\n')
	}
	_, err = a.out.Write(out)
	return err
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
)

type splitResult struct {
	Content []string `json:"content"`
	Valid   []string `json:"valid"`
	Invalid []string `json:"invalid"`
}

// writeContent prints values one per line, or as a JSON array.
func writeContent(w io.Writer, content []string, asJSON bool) error {
	if asJSON {
		return writeJSON(w, content)
	}
	for _, v := range content {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

func writeSplit(w io.Writer, res splitResult, asJSON bool) error {
	if asJSON {
		return writeJSON(w, res)
	}
	if err := writeContent(w, res.Valid, false); err != nil {
		return err
	}
	for _, v := range res.Invalid {
		if _, err := fmt.Fprintf(w, "invalid: %s\n", v); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

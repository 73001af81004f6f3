package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tommy251/Atlas2.0/app/models"
)

// feedColumns are the recognised product feed columns. Unknown columns are
// ignored; missing ones fall back to their zero value.
//
//	id,name,price,image_url,best_price,description,category,colors,storage,specs

// ParseFeed reads a delimited product feed and returns the parsed products
// in source row order, plus a warning per row that could not be ingested
// cleanly. One malformed row never aborts the load: the row is skipped
// (or, for a bad specs column, kept with empty specs) and parsing
// continues. Warning line numbers count the header as line 1.
func ParseFeed(r io.Reader) ([]models.Product, []models.RowWarning) {
	products := []models.Product{}
	warnings := []models.RowWarning{}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may be ragged; missing cells default

	header, err := reader.Read()
	if err != nil {
		warnings = append(warnings, models.RowWarning{Line: 1, Message: fmt.Sprintf("read header: %v", err)})
		return products, warnings
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	seen := make(map[string]bool)
	line := 1 // header

	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			warnings = append(warnings, models.RowWarning{Line: line, Message: fmt.Sprintf("malformed row: %v", err)})
			continue
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		id := strings.TrimSpace(field("id"))
		if id == "" {
			id = synthesizeID(line, seen)
		} else if seen[id] {
			warnings = append(warnings, models.RowWarning{Line: line, Message: fmt.Sprintf("duplicate id %q", id)})
			continue
		}
		seen[id] = true

		specs, specsErr := parseSpecs(field("specs"))
		if specsErr != nil {
			warnings = append(warnings, models.RowWarning{Line: line, Message: fmt.Sprintf("invalid specs JSON: %v", specsErr)})
		}

		imageURL := field("image_url")
		images := []string{}
		if imageURL != "" {
			images = []string{imageURL}
		}

		products = append(products, models.Product{
			ID:          id,
			Name:        field("name"),
			Price:       parsePrice(field("price")),
			ImageURL:    imageURL,
			BestPrice:   strings.EqualFold(strings.TrimSpace(field("best_price")), "true"),
			Images:      images,
			Description: field("description"),
			Category:    field("category"),
			Colors:      splitList(field("colors")),
			Storage:     splitList(field("storage")),
			Specs:       specs,
		})
	}

	return products, warnings
}

// parsePrice strips thousands-separator commas and parses a decimal.
// Empty or unparseable prices default to 0.0 rather than rejecting the row.
func parsePrice(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0.0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return f
}

// splitList splits a semicolon-delimited cell, trimming whitespace and
// dropping empty tokens.
func splitList(s string) []string {
	out := []string{}
	for _, t := range strings.Split(s, ";") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseSpecs parses the specs cell as a JSON object. Empty cells yield an
// empty map; invalid JSON yields an empty map plus an error for the
// caller's warning, never a rejected row.
func parseSpecs(s string) (map[string]string, error) {
	specs := map[string]string{}
	if strings.TrimSpace(s) == "" {
		return specs, nil
	}
	if err := json.Unmarshal([]byte(s), &specs); err != nil {
		return map[string]string{}, err
	}
	return specs, nil
}

// synthesizeID generates an id for a blank-id row that cannot collide with
// any id already produced in this load.
func synthesizeID(line int, seen map[string]bool) string {
	id := fmt.Sprintf("row-%d", line)
	for n := 2; seen[id]; n++ {
		id = fmt.Sprintf("row-%d-%d", line, n)
	}
	return id
}

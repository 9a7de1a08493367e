package render

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/cellview/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Table is the decoded shape of a table payload.
type Table struct {
	Headers []any   `mapstructure:"headers"`
	Rows    [][]any `mapstructure:"rows"`
	// HasHeaders is false when headers is absent or not a sequence; no header row is shown.
	HasHeaders bool `mapstructure:"-"`
}

// Chart is the decoded shape of a chart payload.
type Chart struct {
	Values []float64 `mapstructure:"values"`
	Title  string    `mapstructure:"title"`
}

// DecodeTable reads a table payload. It returns domain.ErrInvalidTable when data is not
// an object or rows is not a sequence, and a shape error when a row is not a sequence.
func DecodeTable(data any) (Table, error) {
	obj, ok := data.(map[string]any)
	if !ok || !isSequence(obj["rows"]) {
		return Table{}, domain.ErrInvalidTable
	}

	input := map[string]any{"rows": obj["rows"]}
	hasHeaders := isSequence(obj["headers"])
	if hasHeaders {
		input["headers"] = obj["headers"]
	}

	var table Table
	if err := decodeShape(input, &table); err != nil {
		return Table{}, err
	}
	table.HasHeaders = hasHeaders
	return table, nil
}

// DecodeChart reads a chart payload. Missing values plot nothing, null values plot
// as zero and a missing or empty title becomes "Chart".
func DecodeChart(data any) (Chart, error) {
	chart := Chart{Title: defaultTitle}
	if data != nil {
		if err := decodeShape(data, &chart); err != nil {
			return Chart{}, err
		}
	}
	if chart.Title == "" {
		chart.Title = defaultTitle
	}
	return chart, nil
}

// decodeShape maps generic decoded JSON onto a typed shape. Type mismatches are
// errors; no weak conversion is attempted.
func decodeShape(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		var merr *mapstructure.Error
		if errors.As(err, &merr) {
			return fmt.Errorf("%s", strings.Join(merr.Errors, "; "))
		}
		return err
	}
	return nil
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

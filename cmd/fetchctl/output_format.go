package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"

	"github.com/kbukum/fetchkit/fetch"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// responseBody keeps the raw JSON so object keys print in server order.
type responseBody = json.RawMessage

func validateOutputFormat(outputFormat string) error {
	switch strings.ToLower(outputFormat) {
	case outputTable:
	case outputJSON:
	default:
		return errors.Errorf("unknown output format %q", outputFormat)
	}
	return nil
}

func printResponse(w io.Writer, outputFormat string, body responseBody) error {
	switch strings.ToLower(outputFormat) {
	case outputJSON:
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, body, "", "  "); err != nil {
			return errors.Wrap(err, "error formatting response")
		}
		_, err := fmt.Fprintln(w, pretty.String())
		return err

	case outputTable:
		table, err := responseTable(body)
		if err != nil {
			return errors.Wrap(err, "error formatting response")
		}
		_, err = fmt.Fprintln(w, table)
		return err
	}
	return validateOutputFormat(outputFormat)
}

// responseTable lays out an object as KEY/VALUE rows and an array as
// INDEX/VALUE rows. Anything else is a single VALUE row.
func responseTable(body responseBody) (*uitable.Table, error) {
	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true

	trimmed := bytes.TrimSpace(body)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		obj := fetch.NewParams()
		if err := json.Unmarshal(trimmed, obj); err != nil {
			return nil, err
		}
		table.AddRow("KEY", "VALUE")
		obj.Each(func(k string, v any) {
			table.AddRow(k, cell(v))
		})

	case bytes.HasPrefix(trimmed, []byte("[")):
		var arr []any
		if err := json.Unmarshal(trimmed, &arr); err != nil {
			return nil, err
		}
		table.AddRow("INDEX", "VALUE")
		for i, v := range arr {
			table.AddRow(strconv.Itoa(i), cell(v))
		}

	default:
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, err
		}
		table.AddRow("VALUE")
		table.AddRow(cell(v))
	}
	return table, nil
}

func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

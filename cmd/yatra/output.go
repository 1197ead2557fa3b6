package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// printRaw pretty prints a server response. Bodies that are not JSON are
// written unchanged.
func printRaw(cmd *cobra.Command, raw json.RawMessage) error {
	out := cmd.OutOrStdout()
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, werr := out.Write(raw)
		return werr
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(out)
	return err
}

// printJSON writes v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// table writes tab separated rows aligned in columns.
func table(out io.Writer, header string, rows [][]any) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, header)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(writer, "\t")
			}
			fmt.Fprint(writer, cell)
		}
		fmt.Fprintln(writer)
	}
	return writer.Flush()
}

// requestFailed wraps an API error for display.
func requestFailed(operation string, err error) error {
	return newCommandError(operation, "calling the travel API", err, "Check that the API is reachable (see --api-url) and try again.")
}

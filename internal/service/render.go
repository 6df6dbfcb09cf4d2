package service

import (
	"bufio"
	"fmt"
	"io"

	"vehicle-lookup-api/internal/model"
)

// WriteText renders a search response as plain text, one line per result.
func WriteText(w io.Writer, resp *model.SearchResponse) error {
	bw := bufio.NewWriter(w)

	for _, msg := range resp.Messages {
		fmt.Fprintln(bw, msg)
	}
	for _, r := range resp.Results {
		fmt.Fprintf(bw, "Brand: %s  Model: %s  Vehicle year: %s\n", r.BrandDisplay, r.ModelDisplay, r.YearsDisplay)
	}
	for _, msg := range resp.Footer {
		fmt.Fprintln(bw, msg)
	}

	return bw.Flush()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	// DefaultCSVFilename is used when RespondDownloadableCSV gets an empty
	// filename.
	DefaultCSVFilename = "export.csv"

	csvSeparator    = ';'
	csvSpecialChars = ";\"\r\n"
)

// RespondDownloadableCSV responds with a semicolon separated file built from
// columns and rows, one newline terminated line each.
//
// headers are merged over the builder's headers; Content-Type and
// Content-Disposition are always set by this method and cannot be
// overridden. Cells containing the separator, quotes or line breaks are
// quoted, plain cells are written as is.
func (b Builder) RespondDownloadableCSV(columns []string, rows [][]string, filename string, headers ...map[string]string) Envelope {
	if filename == "" {
		filename = DefaultCSVFilename
	}

	content := encodeCSV(columns, rows)

	b.headers = mergeHeaders(b.headers, headers...)
	b.headers = mergeHeaders(b.headers, map[string]string{
		headerContentType:     "text/csv",
		"Content-Disposition": fmt.Sprintf("attachment; filename='%s'", filename),
	})

	return b.envelope(FileBody{Filename: filename, Content: content})
}

func encodeCSV(columns []string, rows [][]string) []byte {
	buf := new(bytes.Buffer)

	writeCSVLine(buf, columns)
	for _, row := range rows {
		writeCSVLine(buf, row)
	}

	return buf.Bytes()
}

func writeCSVLine(buf *bytes.Buffer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			buf.WriteByte(csvSeparator)
		}
		if !strings.ContainsAny(cell, csvSpecialChars) {
			buf.WriteString(cell)
			continue
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

// Package pdf renders markdown reports, such as the review calendar, to PDF.
package pdf

import (
	"fmt"
	"path/filepath"

	"github.com/mandolyte/mdtopdf"
)

// RenderMarkdown writes the markdown content to pdfPath as an A4 PDF and
// returns the absolute path of the written file.
func RenderMarkdown(content []byte, pdfPath string) (string, error) {
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

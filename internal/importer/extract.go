package importer

import (
	"fmt"
	"os/exec"
)

// ExtractText pulls the plain text out of a PDF using pdftotext, which
// must be on PATH. Layout is deliberately not preserved; the heuristics
// in parse.go work on flat lines.
func ExtractText(pdfPath string) (string, error) {
	out, err := exec.Command("pdftotext", pdfPath, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext %s: %w", pdfPath, err)
	}
	return string(out), nil
}

// Command importer turns a folder of exam PDFs into a draft question
// bank for review. It is an authoring aid; the practice server never
// depends on it.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/torqueprep/backend/internal/importer"
)

func main() {
	var (
		pdfDir   = flag.String("pdfs", "./input_pdfs", "directory of source PDFs")
		outPath  = flag.String("out", "./drafts/questions.json", "draft bank output path")
		jsonl    = flag.String("jsonl", "", "optional JSONL output path")
		taxonomy = flag.String("taxonomy", "", "optional taxonomy YAML for chapter/topic tagging")
		minLen   = flag.Int("min-len", 30, "minimum question text length")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var rules []importer.Rule
	if *taxonomy != "" {
		var err error
		rules, err = importer.LoadTaxonomy(*taxonomy)
		if err != nil {
			logger.Error("failed to load taxonomy", "error", err)
			os.Exit(1)
		}
	}

	imp := importer.New(rules, *minLen, logger)
	drafts, err := imp.ImportDir(*pdfDir)
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	if err := importer.WriteJSON(*outPath, drafts); err != nil {
		logger.Error("failed to write drafts", "error", err)
		os.Exit(1)
	}
	logger.Info("wrote drafts", "path", *outPath, "count", len(drafts))

	if *jsonl != "" {
		if err := importer.WriteJSONL(*jsonl, drafts); err != nil {
			logger.Error("failed to write jsonl", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote jsonl", "path", *jsonl, "count", len(drafts))
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/xhad/medqa/internal/types"
	"github.com/xhad/medqa/pkg/processor"
	"github.com/xhad/medqa/pkg/reader"
	"github.com/xhad/medqa/pkg/store"
)

func getProgressBar(total int, description string, visible bool) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("fields"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func getSpinner(description string, visible bool) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(config Config) error {
	if !config.Color {
		color.NoColor = true
	}
	status := color.New(color.FgGreen).FprintfFunc()

	// Read the document
	readSpinner := getSpinner("📄 Reading "+filepath.Base(config.InputWord)+"...", config.Progress)
	var docReader types.DocumentReader = reader.NewWithConfig(reader.ReaderConfig{
		OnProgress: func(paragraph int) {
			readSpinner.Add(1)
		},
	})
	doc, err := docReader.Read(config.InputWord)
	readSpinner.Finish()
	if err != nil {
		return err
	}
	status(os.Stderr, "\n✓ Read %d paragraphs and %d tables\n", len(doc.Paragraphs), len(doc.Tables))

	// Extract fields
	pairs := len(processor.ExtractBoldLabels(doc.Paragraphs)) - 1
	fieldBar := getProgressBar(pairs, "🔄 Extracting fields...", config.Progress)
	p := processor.NewWithConfig(processor.ProcessorConfig{
		OnProgress: func(label string) {
			fieldBar.Add(1)
		},
	})
	var proc types.Processor = &p
	record, err := proc.Process(doc)
	if err != nil {
		return fmt.Errorf("failed to process document %s: %w", config.InputWord, err)
	}
	fieldBar.Finish()
	status(os.Stderr, "\n✓ %d question fields, %d answer fields\n", len(record.Question), len(record.Answer))
	if len(record.Answer) == 0 {
		color.New(color.FgYellow).Fprintf(os.Stderr, "! no answer fields found in %s\n", config.InputWord)
	}

	// Append to the dataset
	path := store.DatasetPath(config.DatasetDir, config.Ratio, config.NTotal)
	jsonStore, err := store.New(path)
	if err != nil {
		return err
	}
	var dataset types.RecordStore = jsonStore
	if err := dataset.Store(record); err != nil {
		return fmt.Errorf("failed to store record in %s: %w", path, err)
	}
	if n, err := dataset.Len(); err == nil {
		status(os.Stderr, "✓ %s now holds %d records\n", path, n)
	}

	fmt.Printf("%s processed.\n", filepath.Base(path))
	return nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	cfgPkg "github.com/xhad/medqa/pkg/config"
)

type Config struct {
	InputWord  string
	DatasetDir string
	NTotal     int
	Ratio      string
	Progress   bool
	Color      bool
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if err := run(config); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string, output io.Writer) (Config, error) {
	var config Config
	var configPath string
	var noProgress, noColor bool

	fs := flag.NewFlagSet("medqa", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&configPath, "config", "", "Path to config file")
	fs.StringVar(&config.InputWord, "input_word", "", "Path to input word document (required)")
	fs.StringVar(&config.DatasetDir, "dataset_dir", "", "Path to dataset dir (required)")
	fs.IntVar(&config.NTotal, "n_total", 50, "Total number of data")
	fs.StringVar(&config.Ratio, "ratio", "", "Ratio of correct and wrong: "+strings.Join(cfgPkg.Ratios, ", "))
	fs.BoolVar(&noProgress, "no-progress", false, "Disable progress bars")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
	if err := fs.Parse(args); err != nil {
		return config, err
	}

	cfg, err := cfgPkg.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(output, err)
		return config, err
	}

	// Override config with command line flags if provided
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input_word":
			cfg.Input.Word = config.InputWord
		case "dataset_dir":
			cfg.Dataset.Dir = config.DatasetDir
		case "n_total":
			cfg.Dataset.NTotal = config.NTotal
		case "ratio":
			cfg.Dataset.Ratio = config.Ratio
		}
	})
	if noProgress {
		off := false
		cfg.UI.Progress = &off
	}
	if noColor {
		off := false
		cfg.UI.Color = &off
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(output, e)
		}
		fs.Usage()
		return config, errs[0]
	}

	// Update config struct
	config.InputWord = cfg.Input.Word
	config.DatasetDir = cfg.Dataset.Dir
	config.NTotal = cfg.Dataset.NTotal
	config.Ratio = cfg.Dataset.Ratio
	config.Progress = cfg.ShowProgress()
	config.Color = cfg.UseColor()

	return config, nil
}

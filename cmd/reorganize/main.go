package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"meteocli/internal/chart"
	"meteocli/internal/config"
	"meteocli/internal/exporter"
	"meteocli/internal/infrastructure"
	"meteocli/internal/locale"
	"meteocli/internal/pivot"
	"meteocli/internal/spreadsheet"
)

func main() {
	in := flag.String("in", "", "input xlsx file with a date column and an observation column")
	out := flag.String("out", "", "output xlsx file path (defaults to <in>_pivoted.xlsx in the reports dir)")
	csvOut := flag.String("csv", "", "optional csv output path for the pivoted table")
	label := flag.String("label", "", "variable label override (defaults to the input header)")
	year := flag.Int("year", 0, "year to emit chart data for (0 disables chart output)")
	chartOut := flag.String("chart", "", "chart payload json path (defaults to <out>.chart.json when -year is set)")
	lang := flag.String("lang", "", "month name language, es or en (defaults to configured language)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: reorganize -in <file.xlsx> [-out <file.xlsx>] [-year <yyyy> [-chart <file.json>]]")
		os.Exit(2)
	}

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.GetLogPath("reorganize.log"),
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *out == "" {
		base := strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
		*out = paths.GetReportPath(base + "_pivoted.xlsx")
	}

	language := cfg.Locale.Language
	if *lang != "" {
		language = *lang
	}
	months := locale.Months(locale.Parse(language))

	logger.Info("Starting reorganization",
		slog.String("input_file", *in),
		slog.String("output_file", *out),
		slog.String("language", language))

	series, err := spreadsheet.ReadSeries(*in)
	if err != nil {
		logger.Error("Failed to read input workbook", "error", err, "file", *in)
		os.Exit(1)
	}

	variableLabel := series.VariableLabel
	if *label != "" {
		variableLabel = *label
	}

	table, err := pivot.Reorganize(series, variableLabel, months)
	if err != nil {
		logger.Error("Reorganization failed", "error", err)
		os.Exit(1)
	}

	if err := spreadsheet.WritePivoted(*out, series.SheetName, table); err != nil {
		logger.Error("Failed to write output workbook", "error", err, "file", *out)
		os.Exit(1)
	}
	logger.Info("Wrote pivoted workbook",
		slog.String("file", *out),
		slog.Int("years", len(table.Years)))

	if *csvOut != "" {
		if err := exporter.NewCSVWriter().WritePivoted(*csvOut, table); err != nil {
			logger.Error("Failed to write csv export", "error", err, "file", *csvOut)
			os.Exit(1)
		}
		logger.Info("Wrote csv export", slog.String("file", *csvOut))
	}

	if *year != 0 {
		payload, err := chart.Prepare(table, *year, variableLabel, months)
		if err != nil {
			logger.Error("Failed to prepare chart data", "error", err, "year", *year)
			os.Exit(1)
		}

		path := *chartOut
		if path == "" {
			path = strings.TrimSuffix(*out, filepath.Ext(*out)) + ".chart.json"
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			logger.Error("Failed to encode chart payload", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			logger.Error("Failed to write chart payload", "error", err, "file", path)
			os.Exit(1)
		}
		logger.Info("Wrote chart payload",
			slog.String("file", path),
			slog.Int("year", *year))
	}
}

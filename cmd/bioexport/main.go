// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command bioexport compiles a profile file into a static index.html
// without starting the editor.
//
//	bioexport -profile page.yaml -out dist/ [-qr-url https://alex.example.com]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"

	"biominimal/internal/export"
	"biominimal/internal/models"
)

const qrFilename = "qr.png"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bioexport", flag.ContinueOnError)
	profilePath := fs.String("profile", "", "profile file (.json, .yaml or .yml); empty exports the demo profile")
	outDir := fs.String("out", "dist", "output directory")
	format := fs.String("format", "", "profile format, overrides the file extension (json, yaml)")
	qrURL := fs.String("qr-url", "", "also write qr.png encoding this URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := readProfile(*profilePath, *format)
	if err != nil {
		return err
	}

	res, err := export.Export(ctx, p, export.FileSaver{Dir: *outDir})
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, res.Location)

	if *qrURL != "" {
		path := filepath.Join(*outDir, qrFilename)
		if err := qrcode.WriteFile(*qrURL, qrcode.Medium, 256, path); err != nil {
			return fmt.Errorf("write qr code: %w", err)
		}
		slog.Info("qr code written", "path", path, "url", *qrURL)
		fmt.Fprintln(os.Stdout, path)
	}
	return nil
}

// readProfile loads the profile file, or the demo profile when path is
// empty. An explicit format wins over the extension.
func readProfile(path, format string) (models.Profile, error) {
	if path == "" {
		return models.DefaultProfile(), nil
	}
	if format == "" {
		p, found, err := models.LoadProfileFile(path)
		if err != nil {
			return models.Profile{}, err
		}
		if !found {
			return models.Profile{}, fmt.Errorf("profile %s: %w", path, os.ErrNotExist)
		}
		return p, nil
	}

	f, err := models.ParseFormat(format)
	if err != nil {
		return models.Profile{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return models.Profile{}, fmt.Errorf("open profile: %w", err)
	}
	defer file.Close()
	return models.DecodeProfile(file, f)
}

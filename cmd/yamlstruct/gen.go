package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/reoring/yamlstruct/internal/gen"
)

func genCmd(args []string, stdout io.Writer, logger log.Logger) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	var typesCSV, dir, out string
	fs.StringVar(&typesCSV, "type", "", "comma-separated struct type names")
	fs.StringVar(&dir, "dir", ".", "package directory to read the types from")
	fs.StringVar(&out, "o", "", "output filename (stdout when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	types := splitCSV(typesCSV)
	if len(types) == 0 {
		fs.Usage()
		return errors.New("gen: -type is required")
	}

	f, err := gen.Collect(dir, types)
	if err != nil {
		return errors.Wrap(err, "gen")
	}
	code, err := gen.Render(f)
	if err != nil {
		return err
	}
	if out == "" {
		_, err = stdout.Write(code)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return errors.Wrap(err, "creating output dir")
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		return errors.Wrap(err, "writing output")
	}
	level.Info(logger).Log("msg", "generated codecs", "types", strings.Join(types, ","), "out", out)
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

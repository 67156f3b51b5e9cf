package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/jsonview"
)

func jsonCmd(args []string, stdout io.Writer, logger log.Logger) error {
	if len(args) != 1 {
		return errors.New("json: expected exactly one FILE argument")
	}
	if !jsonview.Enabled {
		return errors.Wrap(jsonview.ErrDisabled, "json: rebuild with -tags yaml2json")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "%s not found or broken", args[0])
	}
	out, err := jsonview.YAMLToJSON(data)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "projected document", "file", args[0], "bytes", len(out))
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func envCmd(args []string, stdout io.Writer, logger log.Logger) error {
	fs := flag.NewFlagSet("env", flag.ContinueOnError)
	var prefix, keyCase string
	fs.StringVar(&prefix, "prefix", "", "environment variable prefix")
	fs.StringVar(&keyCase, "key-case", "lower", "how variable suffixes become keys: lower, upper or asis")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if prefix == "" || fs.NArg() != 1 {
		fs.Usage()
		return errors.New("env: -prefix and one FILE argument are required")
	}
	opt := yamlstruct.LoadOpt{Logger: logger}
	switch keyCase {
	case "lower":
		opt.KeyCase = yamlstruct.KeyLower
	case "upper":
		opt.KeyCase = yamlstruct.KeyUpper
	case "asis":
		opt.KeyCase = yamlstruct.KeyAsIs
	default:
		return errors.Errorf("env: unknown -key-case %q", keyCase)
	}

	root, err := yamlstruct.LoadNode(yamlstruct.File(fs.Arg(0)), opt)
	if err != nil {
		return err
	}
	root, err = yamlstruct.OverlayEnv(root, prefix, opt)
	if err != nil {
		return err
	}
	text, err := yamlstruct.Emit(root)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, text)
	return err
}

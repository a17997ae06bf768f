// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lima-vm/tzoffset/pkg/tzoffset"
	"github.com/lima-vm/tzoffset/pkg/version"
	"github.com/lima-vm/tzoffset/pkg/yqutil"
)

type offsetInfo struct {
	Hours         int    `json:"hours" yaml:"hours"`
	Truncated     bool   `json:"truncated" yaml:"truncated"`
	Instant       string `json:"instant" yaml:"instant"`
	Reinterpreted string `json:"reinterpreted" yaml:"reinterpreted"`
	Version       string `json:"version" yaml:"version"`
}

func newInfoCommand() *cobra.Command {
	infoCommand := &cobra.Command{
		Use:   "info",
		Short: "Show how the offset was derived",
		Example: `  Print only the hours:
  $ tzoffset info --yq .hours`,
		Args: WrapArgsError(cobra.NoArgs),
		RunE: infoAction,
	}
	infoCommand.Flags().String("format", "json", "Output format [json, yaml]")
	infoCommand.Flags().String("yq", ".", "Apply yq expression to output")
	return infoCommand
}

func newOffsetInfo(o *tzoffset.Offset) *offsetInfo {
	return &offsetInfo{
		Hours:         o.Hours,
		Truncated:     o.Truncated,
		Instant:       o.Instant.Format(time.RFC3339),
		Reinterpreted: o.Reinterpreted.Format(time.RFC3339),
		Version:       version.Version,
	}
}

func outputIsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func infoAction(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported format: %q", format)
	}
	yq, err := cmd.Flags().GetString("yq")
	if err != nil {
		return err
	}
	o, err := tzoffset.New().Compute()
	if err != nil {
		return err
	}
	j, err := json.MarshalIndent(newOffsetInfo(o), "", "    ")
	if err != nil {
		return err
	}

	colors := format == "json" && outputIsTTY(cmd.OutOrStdout())
	b, err := yqutil.EvaluateExpression(yq, j, yqutil.NewJSONEncoder(4, colors))
	if err != nil {
		return err
	}
	if format == "yaml" {
		if b, err = yaml.JSONToYAML(b); err != nil {
			return err
		}
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

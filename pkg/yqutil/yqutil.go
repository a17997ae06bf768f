// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package yqutil

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mikefarah/yq/v4/pkg/yqlib"
	"github.com/sirupsen/logrus"
	logging "gopkg.in/op/go-logging.v1"
)

// NewJSONEncoder returns a yq JSON encoder with the given indentation.
func NewJSONEncoder(indent int, colors bool) yqlib.Encoder {
	prefs := yqlib.ConfiguredJSONPreferences.Copy()
	prefs.Indent = indent
	prefs.ColorsEnabled = colors
	return yqlib.NewJSONEncoder(prefs)
}

// EvaluateExpression evaluates the yq expression against the JSON or YAML
// document in content and renders the result with encoder.
func EvaluateExpression(expression string, content []byte, encoder yqlib.Encoder) ([]byte, error) {
	tmpFile, err := os.CreateTemp("", "tzoffset-yq-*.yaml")
	if err != nil {
		return nil, err
	}
	tmpPath := tmpFile.Name()
	defer os.RemoveAll(tmpPath)
	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, err
	}
	if err := tmpFile.Close(); err != nil {
		return nil, err
	}

	// yqlib logs through go-logging; keep it quiet unless evaluation fails.
	memory := logging.NewMemoryBackend(0)
	backend := logging.AddModuleLevel(memory)
	logging.SetBackend(backend)
	yqlib.InitExpressionParser()

	out := new(bytes.Buffer)
	printer := yqlib.NewPrinter(encoder, yqlib.NewSinglePrinterWriter(out))
	decoder := yqlib.NewYamlDecoder(yqlib.ConfiguredYamlPreferences)

	streamEvaluator := yqlib.NewStreamEvaluator()
	if err := streamEvaluator.EvaluateFiles(expression, []string{tmpPath}, printer, decoder); err != nil {
		logger := logrus.StandardLogger()
		for node := memory.Head(); node != nil; node = node.Next() {
			entry := logrus.NewEntry(logger).WithTime(node.Record.Time)
			message := fmt.Sprintf("[%s] %s", node.Record.Module, node.Record.Message())
			switch node.Record.Level {
			case logging.CRITICAL, logging.ERROR:
				entry.Error(message)
			case logging.WARNING:
				entry.Warn(message)
			case logging.NOTICE, logging.INFO:
				entry.Info(message)
			case logging.DEBUG:
				entry.Debug(message)
			}
		}
		return nil, err
	}
	return out.Bytes(), nil
}

// Package output renders validation reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/sciencefair-go/pkg/sciencefair/models"
	"gopkg.in/yaml.v3"
)

// SuccessMessage is printed when every row passes.
const SuccessMessage = "All data is correct!"

// Format selects how a report is rendered.
type Format string

const (
	// FormatText prints one line per violation, or SuccessMessage.
	FormatText Format = "text"
	// FormatJSON prints the whole report as JSON.
	FormatJSON Format = "json"
	// FormatYAML prints the whole report as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be text, json, or yaml)", s)
	}
}

// Write renders report to w in the given format.
func Write(w io.Writer, report *models.Report, format Format) error {
	var data []byte
	var err error
	switch format {
	case FormatText:
		return Text(w, report)
	case FormatJSON:
		data, err = ToJSON(report, true)
	case FormatYAML:
		data, err = ToYAML(report)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Text writes each violation message on its own line.
func Text(w io.Writer, report *models.Report) error {
	if report.AllValid {
		_, err := fmt.Fprintln(w, SuccessMessage)
		return err
	}
	for _, v := range report.Violations {
		if _, err := fmt.Fprintln(w, v.Message); err != nil {
			return err
		}
	}
	return nil
}

// ToJSON serializes a report to JSON with a trailing newline.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ToYAML serializes a report to YAML.
func ToYAML(report *models.Report) ([]byte, error) {
	return yaml.Marshal(report)
}

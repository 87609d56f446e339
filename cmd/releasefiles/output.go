package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces"
)

type outputFormat string

const (
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch outputFormat(s) {
	case formatJSON, formatYAML:
		return outputFormat(s), nil
	case "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json or yaml)", s)
	}
}

// render writes the resolution to w in the configured format
func (a *app) render(w io.Writer, resolution *entities.Resolution) error {
	if resolution.Binaries == nil {
		resolution.Binaries = []entities.ReleaseFile{}
	}
	if resolution.IsEmpty() {
		a.logger.Warn("Release resolved without any artifacts",
			interfaces.F("tag", resolution.Tag),
			interfaces.F("kind", resolution.Kind))
	}

	switch a.format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resolution); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(resolution, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// timestampLayout is the output-name timestamp, YYYYMMDD_HHMMSS.
const timestampLayout = "20060102_150405"

// OutputPath returns the timestamped destination for a source PDF:
// <dir>/<stem>_<YYYYMMDD_HHMMSS>.md. The timestamp keeps repeated
// conversions of the same file from clobbering each other.
func OutputPath(dir, source string, t time.Time) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(dir, fmt.Sprintf("%s_%s.md", stem, t.Format(timestampLayout)))
}

// frontmatter renders the YAML provenance block stamped on converted files.
func frontmatter(source string, pages int, at time.Time) string {
	fm := struct {
		Source      string `yaml:"source"`
		Pages       int    `yaml:"pages"`
		ConvertedAt string `yaml:"converted_at"`
	}{
		Source:      source,
		Pages:       pages,
		ConvertedAt: at.Format(time.RFC3339),
	}

	data, err := yaml.Marshal(fm)
	if err != nil {
		// Marshalling a flat struct of strings and ints cannot fail.
		return ""
	}
	return "---\n" + string(data) + "---\n\n"
}

// Package testdata holds recorded hand service output for tests.
package testdata

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/ayusman/fingercalc/internal/detector"
)

//go:embed hands/*.json
var handsFS embed.FS

// LoadHands decodes the named fixture, e.g. "three" or "thumbs_up".
func LoadHands(name string) ([]detector.HandLandmarks, error) {
	data, err := handsFS.ReadFile("hands/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("load hands %s: %w", name, err)
	}

	hands, err := detector.DecodeResponse(bytes.TrimSpace(data))
	if err != nil {
		return nil, fmt.Errorf("decode hands %s: %w", name, err)
	}

	return hands, nil
}

// Names lists the available fixtures.
func Names() []string {
	entries, err := fs.ReadDir(handsFS, "hands")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Recording joins fixtures into a replay recording, one frame per name, suitable
// for detector.NewReplayDetector.
func Recording(names ...string) ([]byte, error) {
	var buf bytes.Buffer
	for _, name := range names {
		data, err := handsFS.ReadFile("hands/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("load hands %s: %w", name, err)
		}
		buf.Write(bytes.TrimSpace(data))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

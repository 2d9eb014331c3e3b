package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"checkattr/internal/hir/hirdoc"
)

const maxSeedBytes = 64 << 10

// seedDirs hold the repository's crate document fixtures.
var seedDirs = []string{
	filepath.Join("..", "driver", "testdata"),
	filepath.Join("..", "hir", "hirdoc", "testdata"),
}

// addDocumentSeeds adds every fixture of the given format, re-encoded when
// the fixture is stored in another one, plus a few hand-written shapes.
func addDocumentSeeds(f *testing.F, format hirdoc.Format) {
	for _, root := range seedDirs {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil || d.IsDir() || !hirdoc.IsDocumentPath(path) {
				return nil
			}
			// #nosec G304 -- path comes from a repository testdata walk
			data, err := os.ReadFile(path)
			if err != nil {
				return nil
			}
			from, err := hirdoc.FormatFromPath(path)
			if err != nil {
				return nil
			}
			if from != format {
				doc, err := hirdoc.Decode(data, from)
				if err != nil {
					return nil
				}
				if data, err = hirdoc.Encode(doc, format); err != nil {
					return nil
				}
			}
			f.Add(clampSeed(data))
			return nil
		})
	}

	if format == hirdoc.FormatYAML {
		f.Add([]byte{})
		f.Add([]byte("crate: c\n"))
		f.Add([]byte("crate: c\nitems:\n- kind: enum\n  attrs:\n  - name: repr\n    args:\n    - name: u8\n    - name: C\n"))
		f.Add([]byte("crate: c\nitems:\n- kind: fn\n  attrs:\n  - name: inline\n    kind: list\n"))
	}
}

func clampSeed(b []byte) []byte {
	if len(b) > maxSeedBytes {
		b = b[:maxSeedBytes]
	}
	return append([]byte(nil), b...)
}

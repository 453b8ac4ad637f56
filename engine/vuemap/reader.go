package vuemap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vuegraph/vuegraph/engine/domain"
)

// Read opens the map file at path and decodes it into a RawMap. It returns
// domain.ErrNotFound when the path does not exist and domain.ErrFileFormat
// when the content is not a well-formed VUE map.
func Read(path string) (*RawMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewFileError(path, "", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read map file: %w", err)
	}

	start := rootIndex(data)
	if start < 0 {
		return nil, domain.NewFileError(path, "no LW-MAP root element", domain.ErrFileFormat)
	}

	var raw RawMap
	if err := xml.Unmarshal(data[start:], &raw); err != nil {
		return nil, domain.NewFileError(path, err.Error(), domain.ErrFileFormat)
	}
	return &raw, nil
}

// rootIndex returns the byte offset of the line on which the LW-MAP root
// element opens, or -1. VUE writes banner lines ahead of the root that are
// not part of the XML document proper, including a US-ASCII encoding
// declaration the decoder would reject.
func rootIndex(data []byte) int {
	offset := 0
	for offset < len(data) {
		line := data[offset:]
		next := len(data)
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = offset + i + 1
		}
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("<LW-MAP")) {
			return offset
		}
		offset = next
	}
	return -1
}

package codec

import (
	"archive/zip"
	"bytes"
)

const (
	// LibraryName is written to the LibPLG_NAME marker.
	LibraryName = "libPLG"
	// LibraryVersion is written to the libPLG_VERSION marker.
	LibraryVersion = "2.0.0"
)

var zipSignature = []byte("PK\x03\x04")

// IsLegacy reports whether data is a valid first-generation container.
func IsLegacy(data []byte) bool {
	if !bytes.HasPrefix(data, zipSignature) {
		return false
	}
	_, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	return err == nil
}

// Package assets defines the object-key scheme used by the edge proxy:
// a folder chosen from the upload's type hint, then a filename prefixed
// with the upload time in unix milliseconds.
package assets

import (
	"fmt"
	"strings"
)

// Folder is the namespace segment of an object key.
type Folder string

const (
	FolderProducts Folder = "products"
	FolderPosters  Folder = "posters"
)

// TypePoster is the only recognized upload type hint. Anything else, including
// an absent hint, routes to the products folder.
const TypePoster = "poster"

// FolderForType maps an upload type hint to its storage folder.
func FolderForType(typeHint string) Folder {
	if typeHint == TypePoster {
		return FolderPosters
	}
	return FolderProducts
}

// Key identifies a stored asset as <folder>/<filename>.
type Key struct {
	Folder   Folder
	Filename string
}

// NewKey builds the key for an upload received at unixMillis. Uniqueness rests
// on the millisecond timestamp; same-name uploads in the same millisecond
// collide and the last write wins.
func NewKey(folder Folder, unixMillis int64, originalFilename string) Key {
	return Key{
		Folder:   folder,
		Filename: fmt.Sprintf("%d-%s", unixMillis, originalFilename),
	}
}

func (k Key) String() string {
	return string(k.Folder) + "/" + k.Filename
}

// ParseKey splits a raw key into folder and filename. The filename may itself
// contain slashes; only the first segment is the folder.
func ParseKey(raw string) (Key, error) {
	folder, filename, ok := strings.Cut(raw, "/")
	if !ok || folder == "" || filename == "" {
		return Key{}, fmt.Errorf("malformed asset key %q", raw)
	}
	return Key{Folder: Folder(folder), Filename: filename}, nil
}

package onyxfont

import "os"
import "io"
import "io/fs"
import "errors"

import "golang.org/x/image/font/sfnt"

// ErrNotFound is returned by font property lookups when the requested
// information is missing or empty.
var ErrNotFound = errors.New("font property not found or empty")

// LoadOutlineFromBytes parses TrueType or OpenType font data and wraps
// it as an outline [FontSource]. The bytes must not be modified while
// the source is in use.
func LoadOutlineFromBytes(data []byte) (*FontSource, error) {
	sfntFont, err := sfnt.Parse(data)
	if err != nil { return nil, err }
	return FromOutline(sfntFont), nil
}

// LoadOutline reads and parses the font file at the given path and
// wraps it as an outline [FontSource]. Supported formats are .ttf and
// .otf.
func LoadOutline(path string) (*FontSource, error) {
	if !hasValidFontExtension(path) {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, err }
	return loadOutlineAndClose(file)
}

// LoadOutlineFromFS is the same as [LoadOutline], but for embedded or
// otherwise virtual filesystems.
func LoadOutlineFromFS(filesys fs.FS, path string) (*FontSource, error) {
	if !hasValidFontExtension(path) {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return loadOutlineAndClose(file)
}

// Name returns the full name recorded in the wrapped font. Only
// outline fonts carry naming tables; other flavors report
// [ErrNotFound].
func (self *FontSource) Name() (string, error) {
	return self.property(sfnt.NameIDFull)
}

// Family returns the family name recorded in the wrapped font. Only
// outline fonts carry naming tables; other flavors report
// [ErrNotFound].
func (self *FontSource) Family() (string, error) {
	return self.property(sfnt.NameIDFamily)
}

func (self *FontSource) property(id sfnt.NameID) (string, error) {
	if self.kind != SourceOutline { return "", ErrNotFound }
	value, err := self.outline.font.Name(&self.outline.buffer, id)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return value, err
}

// ---- helpers ----

func loadOutlineAndClose(file io.ReadCloser) (*FontSource, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return LoadOutlineFromBytes(data)
}

// Whether the font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	third := path[len(path) - 3]
	if third != 't' && third != 'o' { return false }
	return path[len(path) - 4] == '.'
}

// Package fileutil reads and writes documents on disk, decompressing and
// compressing .xz files transparently. The path "-" means stdin or stdout.
package fileutil

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/xliffconv/core/errors"
	"github.com/FocuswithJustin/xliffconv/internal/validation"
)

// StdStream is the path that names stdin for reads and stdout for writes.
const StdStream = "-"

// Injectable for testing.
var (
	stdin       io.Reader = os.Stdin
	stdout      io.Writer = os.Stdout
	xzNewReader           = xz.NewReader
	xzNewWriter           = xz.NewWriter
	osCreateTemp          = os.CreateTemp
	osRename              = os.Rename
)

// IsCompressed reports whether path names an .xz file.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xz")
}

// TrimCompression strips a trailing .xz from path.
func TrimCompression(path string) string {
	if IsCompressed(path) {
		return path[:len(path)-len(filepath.Ext(path))]
	}
	return path
}

// ReadFile reads path, or stdin for "-". Content that starts with the xz
// header is decompressed whatever the name; an .xz name holding anything
// else, or binary content, is rejected. At most validation.MaxFileSize bytes
// are accepted after decompression.
func ReadFile(path string) ([]byte, error) {
	if err := validation.ValidatePath(path); err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	var r io.Reader
	if path == StdStream {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.NewIO("read", path, err)
		}
		defer f.Close()
		r = f
	}

	br := bufio.NewReaderSize(r, validation.HeaderSize)
	header, _ := br.Peek(validation.HeaderSize)
	fileType, err := validation.ValidateFileType(bytes.NewReader(header), path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	r = br
	if fileType == validation.FileTypeXZ {
		xr, err := xzNewReader(br)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		r = xr
	}

	data, err := io.ReadAll(validation.LimitReader(r, validation.MaxFileSize))
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return data, nil
}

// WriteFile writes data to path, or stdout for "-". A path ending in .xz is
// compressed. The file is written to a temporary sibling and renamed into
// place, so a failed write never leaves a truncated document behind.
func WriteFile(path string, data []byte) (err error) {
	if err := validation.ValidatePath(path); err != nil {
		return errors.NewIO("write", path, err)
	}

	if path == StdStream {
		if _, err := stdout.Write(data); err != nil {
			return errors.NewIO("write", path, err)
		}
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIO("mkdir", dir, err)
	}

	tmp, err := osCreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.NewIO("write", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	if err = writeTo(tmp, path, data); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return errors.NewIO("write", path, err)
	}
	if err = osRename(tmp.Name(), path); err != nil {
		return errors.NewIO("rename", path, err)
	}
	return nil
}

func writeTo(w io.Writer, path string, data []byte) error {
	if !IsCompressed(path) {
		if _, err := w.Write(data); err != nil {
			return errors.NewIO("write", path, err)
		}
		return nil
	}

	xw, err := xzNewWriter(w)
	if err != nil {
		return errors.NewIO("compress", path, err)
	}
	if _, err := xw.Write(data); err != nil {
		return errors.NewIO("compress", path, err)
	}
	if err := xw.Close(); err != nil {
		return errors.NewIO("compress", path, err)
	}
	return nil
}

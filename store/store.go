// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package store loads assembly sources and persists resolved programs.
package store

import (
	"io/fs"
	"path"
	"strings"

	"github.com/ezrec/mipsim/asm"
)

// OUTPUT_EXT is the extension of a built program.
const OUTPUT_EXT = ".out"

// OutputName derives the built program name from a source name,
// replacing its extension.
func OutputName(source string) string {
	return strings.TrimSuffix(source, path.Ext(source)) + OUTPUT_EXT
}

// Source reads an assembly source.
func Source(filesys fs.FS, name string) (data []byte, err error) {
	data, err = fs.ReadFile(filesys, name)
	if err != nil {
		err = &ErrResource{Op: "read", Path: name, Err: err}
	}
	return
}

// Open reads a persisted program, in the format given by its extension.
func Open(filesys fs.FS, name string) (prog *asm.Program, err error) {
	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		err = &ErrResource{Op: "read", Path: name, Err: err}
		return
	}

	prog, err = Unmarshal(data, FormatOf(name))
	if err != nil {
		err = &ErrResource{Op: "decode", Path: name, Err: err}
	}
	return
}

// Save writes a program, creating any missing directories in name.
// Existing files are overwritten.
func Save(filesys CreateFS, name string, prog *asm.Program, format Format) (err error) {
	defer func() {
		if err != nil {
			err = &ErrResource{Op: "write", Path: name, Err: err}
		}
	}()

	data, err := Marshal(prog, format)
	if err != nil {
		return
	}

	dir, file := path.Split(path.Clean(name))
	for _, part := range strings.Split(strings.Trim(dir, "/"), "/") {
		if len(part) == 0 {
			continue
		}
		filesys, err = subdir(filesys, part)
		if err != nil {
			return
		}
	}

	out, err := filesys.Create(file)
	if err != nil {
		return
	}

	_, err = out.Write(data)
	if err != nil {
		out.Close()
		return
	}

	return out.Close()
}

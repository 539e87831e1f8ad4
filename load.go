package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// Load reads a word list from the named file and adds every word in it. The
// file is mapped into memory read-only for the duration of the call.
//
// Loading is all or nothing: if the file cannot be opened or read, or any
// token is not a valid word, the dictionary is left as it was before the
// call. Loading into a loaded dictionary adds to it.
func (d *Dictionary) Load(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &Error{
			Code:    ErrCodeSourceUnavailable,
			Message: "could not open dictionary",
			Path:    path,
			Cause:   errors.New("is a directory"),
		}
	}

	f, err := mmap.Open(path)
	if err != nil {
		return &Error{
			Code:    ErrCodeSourceUnavailable,
			Message: "could not open dictionary",
			Path:    path,
			Cause:   err,
		}
	}
	defer f.Close()

	err = d.LoadReader(io.NewSectionReader(f, 0, int64(f.Len())))
	var de *Error
	if errors.As(err, &de) {
		de.Path = path
	}
	return err
}

// LoadReader is Load for a word list that is already open. Tokens are
// separated by any whitespace.
func (d *Dictionary) LoadReader(r io.Reader) error {
	staging := d.staging()
	staging.root = &node{}
	staging.numNodes = 1

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if err := staging.Insert(scanner.Text()); err != nil {
			_ = staging.Unload()
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		_ = staging.Unload()
		return newError(ErrCodeSourceRead, "could not read dictionary", err)
	}

	return d.adopt(staging)
}

// adopt moves the words of staging into d.
func (d *Dictionary) adopt(staging *Dictionary) error {
	if d.root == nil {
		if d.maxNodes > 0 && staging.numNodes > d.maxNodes {
			_ = staging.Unload()
			return &Error{
				Code:    ErrCodeNodeLimit,
				Message: fmt.Sprintf("word list needs %d nodes, limit is %d", staging.numNodes, d.maxNodes),
			}
		}
		d.root, d.numNodes, d.numAdded = staging.root, staging.numNodes, staging.numAdded
		return nil
	}

	added := staging.numNodes - overlap(d.root, staging.root)
	if d.maxNodes > 0 && d.numNodes+added > d.maxNodes {
		_ = staging.Unload()
		return &Error{
			Code:    ErrCodeNodeLimit,
			Message: fmt.Sprintf("word list needs %d more nodes, %d of %d in use", added, d.numNodes, d.maxNodes),
		}
	}

	merge(d.root, staging.root)
	d.numNodes += added
	d.numAdded += staging.numAdded
	return nil
}

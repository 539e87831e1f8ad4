package dictionary

import (
	"fmt"
)

// MaxWordLength is the default bound on the length of a dictionary word.
const MaxWordLength = 45

// Dictionary is a set of words stored in a trie. The zero value is not
// usable; create one with New.
type Dictionary struct {
	root *node

	numAdded uint // insert calls that succeeded, duplicates included
	numNodes int  // allocated nodes, root included

	maxWordLength int
	maxNodes      int // 0 means unlimited
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithMaxWordLength sets the longest word the dictionary accepts. Values
// below 1 keep the default.
func WithMaxWordLength(n int) Option {
	return func(d *Dictionary) {
		if n > 0 {
			d.maxWordLength = n
		}
	}
}

// WithMaxNodes bounds the number of trie nodes, root included. An insert or
// load that would go past it fails with ErrNodeLimit. Zero means unlimited.
func WithMaxNodes(n int) Option {
	return func(d *Dictionary) {
		if n >= 0 {
			d.maxNodes = n
		}
	}
}

// New creates an empty, unloaded dictionary.
func New(opts ...Option) *Dictionary {
	d := &Dictionary{maxWordLength: MaxWordLength}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// staging returns an empty dictionary with the same limits as d.
func (d *Dictionary) staging() *Dictionary {
	return &Dictionary{
		maxWordLength: d.maxWordLength,
		maxNodes:      d.maxNodes,
	}
}

func (d *Dictionary) validate(word string) error {
	if word == "" {
		return &Error{Code: ErrCodeInvalidWord, Message: "empty word"}
	}
	if len(word) > d.maxWordLength {
		return &Error{
			Code:    ErrCodeInvalidWord,
			Message: fmt.Sprintf("word longer than %d characters", d.maxWordLength),
			Word:    word,
		}
	}
	for i := 0; i < len(word); i++ {
		if _, ok := foldedIndex(word[i]); !ok {
			return &Error{
				Code:    ErrCodeInvalidWord,
				Message: fmt.Sprintf("character %q at offset %d is not a letter or apostrophe", word[i], i),
				Word:    word,
			}
		}
	}
	return nil
}

// Insert adds a word. Upper case letters are stored as lower case, so the
// word is found regardless of the case it was inserted with. Every insert
// that succeeds adds one to Size, even when the word is already present.
// Inserting into an unloaded dictionary loads it.
//
// On error nothing is changed.
func (d *Dictionary) Insert(word string) error {
	if err := d.validate(word); err != nil {
		return err
	}

	need := len(word) + 1
	if d.root != nil {
		need = missing(d.root, word)
	}
	if d.maxNodes > 0 && d.numNodes+need > d.maxNodes {
		return &Error{
			Code:    ErrCodeNodeLimit,
			Message: fmt.Sprintf("inserting needs %d more nodes, %d of %d in use", need, d.numNodes, d.maxNodes),
			Word:    word,
		}
	}

	if d.root == nil {
		d.root = &node{}
		d.numNodes++
	}

	n := d.root
	for i := 0; i < len(word); i++ {
		index, _ := foldedIndex(word[i])
		if n.children[index] == nil {
			n.children[index] = &node{}
			d.numNodes++
		}
		n = n.children[index]
	}

	n.final = true
	d.numAdded++
	return nil
}

// Check returns true if word is in the dictionary. Letters match regardless
// of case. A word holding anything other than letters and apostrophes is
// never found.
func (d *Dictionary) Check(word string) bool {
	if d.root == nil {
		return false
	}
	n := walk(d.root, word)
	return n != nil && n.final
}

// Size returns the number of words loaded, counting duplicates, or 0 if the
// dictionary is not loaded.
func (d *Dictionary) Size() uint {
	return d.numAdded
}

// Loaded returns true between a successful load and the next Unload.
func (d *Dictionary) Loaded() bool {
	return d.root != nil
}

// NumNodes returns the number of nodes in the trie, root included.
func (d *Dictionary) NumNodes() int {
	return d.numNodes
}

// Unload releases every node of the trie and returns the dictionary to its
// unloaded state. Unloading a dictionary that was never loaded does nothing.
// The dictionary is always left unloaded; an error means the trie did not
// hold the number of nodes it had recorded.
func (d *Dictionary) Unload() error {
	expected := d.numNodes
	released := release(d.root)

	d.root = nil
	d.numAdded = 0
	d.numNodes = 0

	if released != expected {
		return &Error{
			Code:    ErrCodeTeardown,
			Message: fmt.Sprintf("released %d of %d nodes", released, expected),
		}
	}
	return nil
}

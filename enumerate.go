package dictionary

// EnumFn is called for every prefix in the trie. index is the number of
// words enumerated before prefix, and final tells whether prefix is itself
// a word. prefix is reused between calls.
type EnumFn = func(index int, prefix []byte, final bool) EnumerationResult

// EnumerationResult tells Enumerate what to do after fn has seen a prefix.
type EnumerationResult = int

const (
	// Continue descends into the children of the prefix.
	Continue EnumerationResult = iota

	// Skip leaves the children of the prefix out and moves on to its next
	// sibling. Returned for the empty root prefix, it ends the walk at once.
	Skip

	// Stop ends the walk; fn is not called again.
	Stop
)

// Enumerate calls fn for every prefix in the dictionary, depth first, with
// letters in alphabetical order and the apostrophe last. The empty prefix of
// the root comes first.
func (d *Dictionary) Enumerate(fn EnumFn) {
	if d.root == nil {
		return
	}
	index := 0
	d.enumerate(&index, d.root, make([]byte, 0, d.maxWordLength), fn)
}

func (d *Dictionary) enumerate(index *int, n *node, prefix []byte, fn EnumFn) EnumerationResult {
	result := fn(*index, prefix, n.final)
	if n.final {
		*index++
	}
	if result != Continue {
		return result
	}

	l := len(prefix)
	prefix = append(prefix, 0)

	for i, child := range n.children {
		if child == nil {
			continue
		}
		prefix[l] = symbol(i)
		if d.enumerate(index, child, prefix, fn) == Stop {
			return Stop
		}
	}

	return Continue
}

// Words returns every distinct word in the dictionary in enumeration order.
func (d *Dictionary) Words() []string {
	var words []string
	d.Enumerate(func(_ int, prefix []byte, final bool) EnumerationResult {
		if final {
			words = append(words, string(prefix))
		}
		return Continue
	})
	return words
}

// FindAllPrefixesOf returns every word in the dictionary that is a prefix of
// input, input included, shortest first. Matching ignores case and the words
// are returned as they appear in input.
func (d *Dictionary) FindAllPrefixesOf(input string) []string {
	var results []string
	n := d.root
	for pos := 0; n != nil && pos < len(input); pos++ {
		index, ok := foldedIndex(input[pos])
		if !ok {
			break
		}
		n = n.children[index]
		if n != nil && n.final {
			results = append(results, input[:pos+1])
		}
	}
	return results
}

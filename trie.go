package dictionary

const (
	// alphabetSize is a to z plus the apostrophe.
	alphabetSize = 27

	apostropheIndex = 26
)

type node struct {
	final    bool
	children [alphabetSize]*node
}

// symbolIndex returns the child slot of a lower case letter or apostrophe.
func symbolIndex(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c == '\'':
		return apostropheIndex, true
	}
	return 0, false
}

// foldedIndex is symbolIndex with upper case letters folded to lower case.
func foldedIndex(c byte) (int, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return symbolIndex(c)
}

// symbol is the inverse of symbolIndex.
func symbol(index int) byte {
	if index == apostropheIndex {
		return '\''
	}
	return byte('a' + index)
}

// missing returns how many nodes inserting word below root would allocate.
func missing(root *node, word string) int {
	n := root
	for i := 0; i < len(word); i++ {
		index, _ := foldedIndex(word[i])
		if n.children[index] == nil {
			return len(word) - i
		}
		n = n.children[index]
	}
	return 0
}

// walk follows the case folded word from n. It returns nil if some edge is
// absent or the word holds a byte outside the alphabet.
func walk(n *node, word string) *node {
	for i := 0; i < len(word) && n != nil; i++ {
		index, ok := foldedIndex(word[i])
		if !ok {
			return nil
		}
		n = n.children[index]
	}
	return n
}

type frame struct {
	n    *node
	next int
}

// release tears down the subtree at root in post-order using an explicit
// stack, so a long word cannot exhaust the goroutine stack. Every child slot
// is cleared before its parent is counted. It returns the number of nodes
// released.
func release(root *node) int {
	if root == nil {
		return 0
	}

	released := 0
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < alphabetSize {
			i := top.next
			top.next++
			if child := top.n.children[i]; child != nil {
				top.n.children[i] = nil
				stack = append(stack, frame{n: child})
			}
			continue
		}

		top.n.final = false
		released++
		stack = stack[:len(stack)-1]
	}
	return released
}

// overlap counts the nodes of src that have a counterpart at the same path
// in dst, the roots included.
func overlap(dst, src *node) int {
	if dst == nil || src == nil {
		return 0
	}
	count := 1
	for i, child := range src.children {
		count += overlap(dst.children[i], child)
	}
	return count
}

// merge grafts src into dst. Subtrees missing from dst are moved over
// whole, so src must not be used afterwards.
func merge(dst, src *node) {
	if src.final {
		dst.final = true
	}
	for i, child := range src.children {
		if child == nil {
			continue
		}
		if dst.children[i] == nil {
			dst.children[i] = child
		} else {
			merge(dst.children[i], child)
		}
		src.children[i] = nil
	}
}

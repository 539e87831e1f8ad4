package dictionary_test

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/dictionary"
)

func writeWords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadWords(t *testing.T, content string, opts ...dictionary.Option) *dictionary.Dictionary {
	t.Helper()
	d := dictionary.New(opts...)
	require.NoError(t, d.Load(writeWords(t, content)))
	return d
}

func TestCatsAndDogs(t *testing.T) {
	d := loadWords(t, "cat\ncats\ncat's\ndog\n")

	assert.Equal(t, uint(4), d.Size())

	tests := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"ca", false},
		{"cats", true},
		{"cat's", true},
		{"catsup", false},
		{"Dog", true},
		{"DOG", true},
		{"do", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.Check(tt.word), "Check(%q)", tt.word)
	}
}

func TestCheckIgnoresCase(t *testing.T) {
	d := loadWords(t, "hello\n")

	for _, word := range []string{"hello", "HELLO", "HeLLo", "hellO"} {
		assert.True(t, d.Check(word), word)
	}
}

func TestCapitalizedSourceWords(t *testing.T) {
	d := loadWords(t, "Hello\nworld\nO'Neill\n")

	assert.Equal(t, uint(3), d.Size())
	for _, word := range []string{"hello", "HELLO", "HeLLo", "Hello", "world", "WORLD", "o'neill", "O'NEILL"} {
		assert.True(t, d.Check(word), word)
	}
	assert.False(t, d.Check("hell"))
	assert.Equal(t, []string{"hello", "o'neill", "world"}, d.Words())
}

func TestCheckRejectsSymbolsOutsideAlphabet(t *testing.T) {
	d := loadWords(t, "hello\n")

	for _, word := range []string{"hello!", "hel-lo", "héllo", "hello1", " hello", "\x00"} {
		assert.False(t, d.Check(word), word)
	}
}

func TestPrefixIsNotAWord(t *testing.T) {
	d := loadWords(t, "catalog\n")

	assert.True(t, d.Check("catalog"))
	for _, prefix := range []string{"c", "ca", "cat", "catal", "catalo"} {
		assert.False(t, d.Check(prefix), prefix)
	}
	assert.False(t, d.Check("catalogs"))
}

func TestSizeCountsEveryToken(t *testing.T) {
	// whitespace of any kind separates tokens, duplicates count
	d := loadWords(t, "a an\tand  a\r\nan\n\n\nant\v ants ")

	assert.Equal(t, uint(7), d.Size())
	assert.Len(t, d.Words(), 5)
}

func TestLoadMissingFile(t *testing.T) {
	d := dictionary.New()

	err := d.Load("/nonexistent/path")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dictionary.ErrSourceUnavailable))
	assert.Contains(t, err.Error(), "/nonexistent/path")

	assert.Equal(t, uint(0), d.Size())
	assert.False(t, d.Loaded())
	assert.False(t, d.Check("anything"))
}

func TestLoadDirectoryFails(t *testing.T) {
	d := dictionary.New()

	err := d.Load(t.TempDir())
	require.Error(t, err)
	assert.False(t, d.Loaded())
	assert.Equal(t, uint(0), d.Size())
}

func TestLoadEmptyFile(t *testing.T) {
	d := loadWords(t, "")

	assert.True(t, d.Loaded())
	assert.Equal(t, uint(0), d.Size())
	assert.Equal(t, 1, d.NumNodes())
	assert.False(t, d.Check("a"))
}

func TestLoadInvalidTokenKeepsState(t *testing.T) {
	d := loadWords(t, "apple\n")

	err := d.Load(writeWords(t, "banana\nCherry\nwell-known\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dictionary.ErrInvalidWord))
	assert.Equal(t, dictionary.ErrCodeInvalidWord, dictionary.Code(err))
	assert.Contains(t, err.Error(), "well-known")

	assert.Equal(t, uint(1), d.Size())
	assert.True(t, d.Check("apple"))
	assert.False(t, d.Check("banana"))
	assert.False(t, d.Check("cherry"))
}

func TestLoadRejectsLongWords(t *testing.T) {
	long := strings.Repeat("a", dictionary.MaxWordLength+1)

	d := dictionary.New()
	err := d.Load(writeWords(t, "short\n"+long+"\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dictionary.ErrInvalidWord))
	assert.False(t, d.Loaded())

	d = loadWords(t, strings.Repeat("a", dictionary.MaxWordLength))
	assert.True(t, d.Check(strings.Repeat("A", dictionary.MaxWordLength)))
}

func TestWithMaxWordLength(t *testing.T) {
	d := dictionary.New(dictionary.WithMaxWordLength(3))

	assert.NoError(t, d.Insert("cat"))
	assert.True(t, errors.Is(d.Insert("cats"), dictionary.ErrInvalidWord))
}

func TestLoadMergesIntoLoadedDictionary(t *testing.T) {
	d := loadWords(t, "cat\ndog\n")
	nodes := d.NumNodes()

	require.NoError(t, d.Load(writeWords(t, "cats\nbird\ncat\n")))

	assert.Equal(t, uint(5), d.Size())
	for _, word := range []string{"cat", "cats", "dog", "bird"} {
		assert.True(t, d.Check(word), word)
	}
	assert.Equal(t, nodes+1+4, d.NumNodes())
}

func TestUnload(t *testing.T) {
	d := loadWords(t, "cat\ncats\ncat's\ndog\n")

	require.NoError(t, d.Unload())

	assert.Equal(t, uint(0), d.Size())
	assert.Equal(t, 0, d.NumNodes())
	assert.False(t, d.Loaded())
	for _, word := range []string{"cat", "cats", "cat's", "dog"} {
		assert.False(t, d.Check(word), word)
	}
}

func TestUnloadNeverLoaded(t *testing.T) {
	d := dictionary.New()
	assert.NoError(t, d.Unload())
	assert.NoError(t, d.Unload())
	assert.Equal(t, uint(0), d.Size())
}

func TestLoadUnloadLoad(t *testing.T) {
	path := writeWords(t, "a\nab\nabc\nb\nba\nab\n")
	probes := []string{"a", "ab", "abc", "abcd", "b", "ba", "bb", "c"}

	d := dictionary.New()
	require.NoError(t, d.Load(path))
	size := d.Size()
	nodes := d.NumNodes()
	var first []bool
	for _, word := range probes {
		first = append(first, d.Check(word))
	}

	require.NoError(t, d.Unload())
	require.NoError(t, d.Load(path))

	assert.Equal(t, size, d.Size())
	assert.Equal(t, nodes, d.NumNodes())
	for i, word := range probes {
		assert.Equal(t, first[i], d.Check(word), word)
	}
}

func TestIndependentDictionaries(t *testing.T) {
	english := loadWords(t, "house\n")
	german := loadWords(t, "haus\n")

	assert.True(t, english.Check("house"))
	assert.False(t, english.Check("haus"))
	assert.True(t, german.Check("haus"))

	require.NoError(t, english.Unload())
	assert.True(t, german.Check("haus"))
}

func TestInsert(t *testing.T) {
	d := dictionary.New()

	require.NoError(t, d.Insert("it's"))
	assert.True(t, d.Loaded())
	assert.True(t, d.Check("IT'S"))
	assert.Equal(t, uint(1), d.Size())
	assert.Equal(t, 5, d.NumNodes())

	// duplicates count but do not grow the trie
	require.NoError(t, d.Insert("it's"))
	assert.Equal(t, uint(2), d.Size())
	assert.Equal(t, 5, d.NumNodes())

	// upper case letters share the lower case nodes
	require.NoError(t, d.Insert("IT'S"))
	assert.Equal(t, uint(3), d.Size())
	assert.Equal(t, 5, d.NumNodes())

	for _, word := range []string{"", "up-per", "two words", "naïve", "r2d2"} {
		err := d.Insert(word)
		assert.True(t, errors.Is(err, dictionary.ErrInvalidWord), "Insert(%q) = %v", word, err)
	}
	assert.Equal(t, uint(3), d.Size())
}

func TestNodeLimit(t *testing.T) {
	// root + c, a, t
	d := dictionary.New(dictionary.WithMaxNodes(4))

	require.NoError(t, d.Insert("cat"))
	err := d.Insert("cats")
	require.Error(t, err)
	assert.True(t, dictionary.IsFatal(err))
	assert.Equal(t, uint(1), d.Size())
	assert.Equal(t, 4, d.NumNodes())
	assert.False(t, d.Check("cats"))

	// a duplicate needs no new nodes
	assert.NoError(t, d.Insert("cat"))
}

func TestNodeLimitDuringLoad(t *testing.T) {
	d := dictionary.New(dictionary.WithMaxNodes(6))

	err := d.Load(writeWords(t, "abc\nabd\nxyz\n"))
	require.Error(t, err)
	assert.True(t, dictionary.IsFatal(err))
	assert.False(t, d.Loaded())
	assert.Equal(t, uint(0), d.Size())

	require.NoError(t, d.Load(writeWords(t, "abc\nabd\n")))
	assert.Equal(t, 5, d.NumNodes())

	// the second list shares "abc" but still needs e and x
	err = d.Load(writeWords(t, "abe\nabc\nx\n"))
	require.Error(t, err)
	assert.True(t, dictionary.IsFatal(err))
	assert.Equal(t, uint(2), d.Size())
	assert.Equal(t, 5, d.NumNodes())
	assert.False(t, d.Check("abe"))

	require.NoError(t, d.Load(writeWords(t, "abc\n")))
	assert.Equal(t, uint(3), d.Size())
}

func readDictWords(t *testing.T) []string {
	dict := "/usr/share/dict/words"
	if _, err := os.Stat(dict); os.IsNotExist(err) {
		t.Skipf("Skipping full dictionary test; can't find %s", dict)
	}

	file, err := os.Open(dict)
	require.NoError(t, err)
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return words
}

// outsideAlphabet reports whether word holds anything but ASCII letters and
// apostrophes.
func outsideAlphabet(word string) bool {
	return strings.IndexFunc(word, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && r != '\''
	}) >= 0
}

func TestFullDict(t *testing.T) {
	words := readDictWords(t)

	d := dictionary.New()
	var added []string
	for _, word := range words {
		if err := d.Insert(word); err != nil {
			require.ErrorIs(t, err, dictionary.ErrInvalidWord)
			require.True(t, word == "" || len(word) > dictionary.MaxWordLength || outsideAlphabet(word),
				"%q rejected: %v", word, err)
			continue
		}
		added = append(added, word)
	}
	assert.Equal(t, uint(len(added)), d.Size())

	for _, word := range added {
		if !d.Check(strings.ToUpper(word)) || !d.Check(strings.ToLower(word)) {
			t.Fatalf("%q not found", word)
		}
	}
	t.Logf("Dictionary has %v words, %v nodes", d.Size(), d.NumNodes())

	assert.NoError(t, d.Unload())
}

func ExampleDictionary_Check() {
	d := dictionary.New()
	if err := d.LoadReader(strings.NewReader("cat\ncats\ncat's\ndog\n")); err != nil {
		fmt.Println(err)
		return
	}
	defer d.Unload()

	for _, word := range []string{"cat", "ca", "Dog", "catsup"} {
		fmt.Printf("%s: %v\n", word, d.Check(word))
	}
	fmt.Println("size:", d.Size())

	// Output:
	// cat: true
	// ca: false
	// Dog: true
	// catsup: false
	// size: 4
}

/*
Package dictionary is an in-memory word list for spell checking, stored as a
trie (prefix tree) over a 27 symbol alphabet: the letters a to z and the
apostrophe.

A lookup costs time proportional to the length of the word and does not depend
on how many words are in the dictionary. Each node holds a fixed array of 27
children, so following an edge is a single array index, and a flag telling
whether the path from the root to the node spells a complete word.

In general, to use it you first create an empty dictionary using
dictionary.New(). You then call Load() with the path of a word list: a plain
text file of words separated by whitespace, usually one per line. Words are
stored without regard to case, so a list holding "Hello" answers for
"hello" and "HELLO" alike. Loading is all or nothing. If the file cannot be read, or it holds
a token that is not a word, the dictionary is left exactly as it was.

After loading, Check() answers whether a word is in the dictionary, ignoring
the case of its letters, and Size() returns how many words were loaded,
counting duplicates. A loaded dictionary is never modified by lookups, so any
number of goroutines may call Check() at the same time. Load() and Unload()
must not run concurrently with anything else.

Unload() releases every node of the trie and returns the dictionary to its
empty state, ready to be loaded again.
*/
package dictionary

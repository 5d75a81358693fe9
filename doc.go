// Package huffman implements minimum-redundancy (Huffman) prefix codes over
// character symbols.
//
// A Coder tallies symbol frequencies, merges them through a min-heap into a
// binary code tree, and reads the code table off the tree's shape.  Encoded
// data is a string of '0' and '1' characters.  It can be decoded either with
// the tree that produced it or with the code table alone, from which an
// equivalent tree is rebuilt.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman

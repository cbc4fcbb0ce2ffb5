/*
Package mmr implements the position arithmetic of a Merkle Mountain Range:
the pure, stateless functions that relate leaf ordinals, post order element
indices, mountain heights and peak layouts. Nothing in this package touches a
hasher or a store - see the hasher and kvstore packages, and merklelog which
binds this arithmetic to both.

# Post order traversal

Given a graph of 7 nodes like this,

	   g
	c    f
  a   b d  e

the post order is children first, parents after, siblings left to right. So
flattening that tree in post order yields the labels above in series:

	[a, b, c, d, e, f, g]
	[1, 2, 3, 4, 5, 6, 7]

Because an MMR only ever grows by appending, this post order sequence is also
the natural order in which MMR nodes are produced. Given only the total
element count we can navigate the flattened tree using pure binary
arithmetic, without ever materialising it.

Note, for example, that 'jumping right' from c to its sibling f is just

	3 + (2 << 1) - 1

and that relationship holds no matter how large the tree grows.

This implementation follows the same approach as the mimblewimble grin
project's pmmr, adjusted to work against an injected store and hasher rather
than a fixed backing array:

  - https://github.com/mimblewimble/grin/blob/0ff6763ee64e5a14e70ddd4642b99789a1648a32/core/src/core/pmmr.rs

# IndexHeight

The height of a node in a full binary tree, from its post order traversal
index, is the function everything else in this package is built on. The
insertion order of a node in an MMR is identical to the height sequence of a
binary tree traversed in post order:

	[0, 0, 1, 0, 0, 1, 2, 0, 0, 1, 0, 0, 1, 2, 3, 0, 0, 1, ...]

Writing node positions in binary makes the pattern visible: the height of a
node is the count of leading 1 digits on its leftmost branch, minus one. To
find that branch from an arbitrary position we repeatedly subtract the
largest "all ones" value not exceeding it - see JumpLeftPerfect and PosHeight.
*/
package mmr

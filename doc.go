/*
Package arbor implements a generic tree of parent-aware elements.

Arbor

A tree is made of two kinds of members. A Leaf is any member of a tree: it
knows its parent and can navigate to its siblings, but it never holds children.
A Node is a Leaf which additionally owns an ordered sequence of children. Nodes
may be children of other nodes, so trees of arbitrary depth can be built.

	root := arbor.NewNode(nil)
	a := arbor.NewNode(root)     // a is appended to root
	b := arbor.NewLeaf(nil)
	root.PrependChild(b)         // root's children are now [b, a]
	a.Append(arbor.NewLeaf(nil)) // inserts a new leaf right after a

Arbor contains no domain logic. Clients bring their own tree members by
embedding Element (for terminal members) or Branch (for members with
children) into their types and binding them once with Init:

	type Paragraph struct {
	    arbor.Branch
	    Style string
	}

	func NewParagraph() *Paragraph {
	    p := &Paragraph{}
	    p.Init(p)
	    return p
	}

From then on all tree operations report the *Paragraph, not the embedded
Branch, as parent, child or search result.

Invariants

Arbor maintains the following invariants for every node N:

  - every child C of N reports N as its parent,
  - a member is a child of at most one node, and appears there at most once,
  - child indices are contiguous, starting at 0.

Moving a member from one node to another is always done by detaching it first
and then attaching it to the new node. Check verifies the invariants for a
subtree and is mainly useful in tests.

Identity

Members are compared by identity, never by value. Two members are the same
only if they are the same object.

Concurrency

Trees are not safe for concurrent mutation. Clients needing concurrent
access have to serialize mutating calls, e.g. with one mutex per tree.
Iterators returned by Find and FindChildren are invalidated by structural
changes of the tree; iterating while mutating is undefined behavior.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arbor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// TreeError is an error type for the arbor module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrStructure is flagged whenever an operation requires a structural
// precondition which is not met, e.g. inserting next to a member which is not
// a child of the node in question.
const ErrStructure = TreeError("structural precondition not met")

// ErrIndexOutOfRange is flagged whenever a child index is outside of
// 0…ChildCount()-1.
const ErrIndexOutOfRange = TreeError("child index out of range")

// ErrInvalidArgument is flagged whenever function parameters are invalid.
const ErrInvalidArgument = TreeError("invalid argument")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

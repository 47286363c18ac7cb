// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package logicir defines compact encodings of small Boolean networks, called
index lists, together with a windowing engine that extracts bounded
sub-networks out of a technology-mapped network.

Literals

Every encoding in this package is built on the same convention. A literal is
an unsigned integer 2*i + c, where i is the index of a node and c is a
complementation flag. Index 0 is the constant false, indexes 1 to NumPIs are
the primary inputs in declaration order, and the following indexes are gates
in creation order.

Index lists

We provide three variants that are bit-compatible with external synthesis
tools. ABCList stores two-input gates and has no explicit header: the number
of inputs and outputs is found by scanning the list. XAGList stores two-input
gates after a packed 32-bit header holding the number of inputs (8 bits),
outputs (8 bits) and gates (16 bits). MIGList uses the same packed header but
stores three literals per majority gate.

Two-input lists do not store the kind of a gate. It is implied by the order of
its two literals: a gate whose first literal is the smaller one is an AND, the
other order denotes a XOR. Entries with two equal literals are rejected.

Lists are obtained from a network with EncodeABC, EncodeXAG or EncodeMIG, and
replayed into a network with the Insert and Decode functions. The network
itself is never implemented here; it is accessed through the generic
interfaces of network.go.

Windows

A CellWindow wraps a mapped network and computes, around a pivot cell, a set
of gates of bounded size together with its leaves (inputs) and roots
(outputs). Windows are meant to be handed to a resynthesis engine whose result
can be spliced back with one of the Insert functions.

Use of build tags

Compile with the build tag `debug` to unlock logging of the window engine and
of the encoders.
*/
package logicir

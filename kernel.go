// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

// _MAXPIS is the maximal number of primary inputs in a packed header. Inputs
// use the 8 least significant bits of the header word.
const _MAXPIS uint32 = 0xFF

// _MAXPOS is the maximal number of primary outputs in a packed header (bits 8
// to 15 of the header word).
const _MAXPOS uint32 = 0xFF

// _MAXGATES is the maximal number of gates in a packed header. Gates use the
// 16 most significant bits of the header word.
const _MAXGATES uint32 = 0xFFFF

// _DEFAULTMAXGATES is the default bound on the number of gates in a window.
const _DEFAULTMAXGATES int = 128

// _MAXCELLREFS is the exclusive bound on the reference count of a window node
// for its parents to be considered as candidates during the fallback phase of
// the next pivot selection.
const _MAXCELLREFS uint32 = 5

package ir

import (
	"crypto/sha256"
	"encoding/binary"
	"math"

	"wirec/internal/source"
)

// Fingerprint returns the structural content hash of the node: a sha256 over
// (kind, args, fingerprints of inputs) with length-prefixed, order-sensitive
// framing. Two nodes with equal fingerprints are structurally
// interchangeable regardless of identity or allocation order.
//
// The result is cached on the node. Graphs are built single-threaded and
// shared read-only afterwards, so the cache needs no locking.
func (n *Node) Fingerprint() source.Digest {
	if n.fpSet {
		return n.fp
	}

	h := sha256.New()
	var scratch [8]byte

	writeStr := func(s string) {
		binary.BigEndian.PutUint64(scratch[:], uint64(len(s)))
		h.Write(scratch[:])
		h.Write([]byte(s))
	}

	writeStr(string(n.kind))

	binary.BigEndian.PutUint64(scratch[:], uint64(len(n.args)))
	h.Write(scratch[:])
	for _, a := range n.args {
		h.Write([]byte{byte(a.Kind)})
		switch a.Kind {
		case ArgInt:
			binary.BigEndian.PutUint64(scratch[:], uint64(a.Int))
			h.Write(scratch[:])
		case ArgFloat:
			binary.BigEndian.PutUint64(scratch[:], math.Float64bits(a.Num))
			h.Write(scratch[:])
		case ArgString:
			writeStr(a.Str)
		}
	}

	binary.BigEndian.PutUint64(scratch[:], uint64(len(n.inputs)))
	h.Write(scratch[:])
	for _, in := range n.inputs {
		fp := in.Fingerprint()
		h.Write(fp[:])
	}

	copy(n.fp[:], h.Sum(nil))
	n.fpSet = true
	return n.fp
}

// StructurallyEqual reports whether two nodes have the same fingerprint.
func StructurallyEqual(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Fingerprint() == b.Fingerprint()
}

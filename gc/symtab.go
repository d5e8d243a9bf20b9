package gc

import (
	"crypto/rand"

	"golang.org/x/crypto/blake2b"
)

// oblistBuckets is the fixed bucket count of the interned-symbol table; one
// byte of the keyed digest selects a bucket directly; see bucketIndex.
const oblistBuckets = 256

type oblistEntry struct {
	name string
	sym  *Object
}

// oblist is the interned-symbol table: a fixed array of buckets addressed by
// one byte of a heap-instance-local BLAKE2b digest, not Go's built-in map.
// An embedded interpreter typically interns symbols straight from untrusted
// Scheme source, so bucket placement must not be predictable from the name
// alone the way Go's (or any) unkeyed string hash would be; keying the
// digest per Heap and using it to pick the bucket directly is what buys
// flood resistance here, rather than routing through another hash layer.
type oblist struct {
	key     [32]byte
	buckets [oblistBuckets][]oblistEntry
}

func newOblist() oblist {
	var o oblist
	_, _ = rand.Read(o.key[:])
	return o
}

func (o *oblist) digest(name string) []byte {
	h, _ := blake2b.New256(o.key[:16])
	h.Write([]byte(name))
	return h.Sum(nil)
}

func bucketIndex(digest []byte) int { return int(digest[0]) }

// lookup returns the interned SYMBOL object for name, if any is still alive.
func (o *oblist) lookup(name string) (*Object, bool) {
	bucket := o.buckets[bucketIndex(o.digest(name))]
	for _, e := range bucket {
		if e.name == name {
			return e.sym, true
		}
	}
	return nil, false
}

// intern records sym as the interned SYMBOL object for name. The caller is
// responsible for having allocated sym through the heap (so it participates
// in marking) before calling intern.
func (o *oblist) intern(name string, sym *Object) {
	idx := bucketIndex(o.digest(name))
	o.buckets[idx] = append(o.buckets[idx], oblistEntry{name: name, sym: sym})
}

// purge drops every interned symbol whose object did not survive the last
// mark pass. Entries are removed lazily during sweep, never eagerly.
func (o *oblist) purge(h *Heap) {
	for i := range o.buckets {
		bucket := o.buckets[i][:0]
		for _, e := range o.buckets[i] {
			if h.isMarked(e.sym) {
				bucket = append(bucket, e)
			}
		}
		o.buckets[i] = bucket
	}
}

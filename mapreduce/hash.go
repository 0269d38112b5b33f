package mapreduce

import "hash/fnv"

// Integer covers the key kinds whose value hashes directly through Mix64.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Mix64 is a fast 64-bit avalanche finalizer: each input bit flips every
// output bit with probability close to one half. Keys with poor entropy in
// their low bits still spread evenly over slots after mixing. The transform
// is a bijection, so it never introduces collisions of its own.
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// HashInteger hashes an integer-valued key by mixing the value itself.
func HashInteger[K Integer](key K) uint64 {
	return Mix64(uint64(key))
}

// HashString hashes a string key: FNV-1a folded through Mix64.
func HashString(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return Mix64(h.Sum64())
}

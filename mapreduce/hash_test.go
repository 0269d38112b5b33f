package mapreduce

import "testing"

func TestMix64Deterministic(t *testing.T) {
	for _, x := range []uint64{0, 1, 42, 1 << 32, ^uint64(0)} {
		if Mix64(x) != Mix64(x) {
			t.Errorf("Mix64(%v) is not stable", x)
		}
	}
}

func TestMix64Injective(t *testing.T) {
	seen := make(map[uint64]uint64)
	for x := uint64(0); x < 4096; x++ {
		h := Mix64(x)
		if prev, ok := seen[h]; ok {
			t.Fatalf("Mix64 collides: Mix64(%v) == Mix64(%v) == %#x", x, prev, h)
		}
		seen[h] = x
	}
}

func TestMix64SpreadsLowBits(t *testing.T) {
	// Sequential keys differ only in their low bits; after mixing they
	// must still land in many different slots of a 256-way store.
	slots := make(map[uint64]bool)
	for x := uint64(0); x < 256; x++ {
		slots[Mix64(x)&0xff] = true
	}
	if len(slots) < 64 {
		t.Errorf("256 sequential keys spread over only %v of 256 slots", len(slots))
	}
}

func TestHashStringDistinguishesKeys(t *testing.T) {
	keys := []string{"", "a", "b", "ab", "ba", "abc", "the", "The"}
	seen := make(map[uint64]string)
	for _, k := range keys {
		h := HashString(k)
		if prev, ok := seen[h]; ok {
			t.Errorf("HashString(%q) == HashString(%q)", k, prev)
		}
		seen[h] = k
	}
}

func TestHashIntegerMixesValue(t *testing.T) {
	if HashInteger(7) == HashInteger(8) {
		t.Errorf("HashInteger maps 7 and 8 to the same hash")
	}
	if HashInteger(0) != Mix64(0) {
		t.Errorf("HashInteger(0) = %#x, want Mix64(0) = %#x", HashInteger(0), Mix64(0))
	}
	if HashInteger(uint8(200)) != Mix64(200) {
		t.Errorf("HashInteger(uint8(200)) = %#x, want Mix64(200) = %#x", HashInteger(uint8(200)), Mix64(200))
	}
}

package growmap

import "hash/maphash"

type HashFunc[K comparable] func(K) uint64

func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

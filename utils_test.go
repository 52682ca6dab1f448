package growmap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCapacityFromSize(t *testing.T) {
	t.Run("int,int", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[int, int]{})

		tests := []struct {
			name string
			size uintptr
			want int
		}{
			{"zero", 0, 0},
			{"less than one slot", sizeOfSlot - 1, 0},
			{"exactly one slot", sizeOfSlot, 1},
			{"ten slots", sizeOfSlot * 10, 10},
			{"1KB", 1024, int(1024 / sizeOfSlot)},
			{"1MB", 1024 * 1024, int(1024 * 1024 / sizeOfSlot)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := CapacityFromSize[int, int](tt.size)
				require.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("string,string", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[string, string]{})

		got := CapacityFromSize[string, string](sizeOfSlot * 5)
		require.Equal(t, 5, got)
	})

	t.Run("int,struct{}", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[int, struct{}]{})

		got := CapacityFromSize[int, struct{}](sizeOfSlot * 3)
		require.Equal(t, 3, got)
	})
}

func TestIsZeroValue(t *testing.T) {
	require.True(t, isZeroValue(""))
	require.True(t, isZeroValue(0))
	require.True(t, isZeroValue([2]int{}))
	require.True(t, isZeroValue((*int)(nil)))

	require.False(t, isZeroValue("x"))
	require.False(t, isZeroValue(-1))
	require.False(t, isZeroValue([2]int{0, 1}))

	x := 0
	require.False(t, isZeroValue(&x))
}

package store

import (
	"testing"

	"github.com/comparative-genomics/cactusgraph/name"
	"github.com/stretchr/testify/require"
)

func TestMemDiskAddAndGetStringPositiveStrand(t *testing.T) {
	disk := NewMemDisk(name.NewCounterSource(1))
	offset := disk.AddString([]byte("ACGTACGT"))

	got, err := disk.GetString(offset, 2, 4, true)
	require.NoError(t, err)
	require.Equal(t, []byte("GTAC"), got)
}

func TestMemDiskGetStringNegativeStrandReverseComplements(t *testing.T) {
	disk := NewMemDisk(name.NewCounterSource(1))
	offset := disk.AddString([]byte("ACGT"))

	got, err := disk.GetString(offset, 0, 4, false)
	require.NoError(t, err)
	require.Equal(t, []byte("ACGT"), got) // reverse-complement of ACGT is ACGT
}

func TestMemDiskGetStringRejectsOutOfRangeOffset(t *testing.T) {
	disk := NewMemDisk(name.NewCounterSource(1))
	_, err := disk.GetString(5, 0, 1, true)
	require.Error(t, err)
}

func TestMemDiskGetStringRejectsOutOfBoundsRange(t *testing.T) {
	disk := NewMemDisk(name.NewCounterSource(1))
	offset := disk.AddString([]byte("AC"))
	_, err := disk.GetString(offset, 0, 10, true)
	require.Error(t, err)
}

func TestMemDiskGetUniqueIDIssuesDistinctNames(t *testing.T) {
	disk := NewMemDisk(name.NewCounterSource(1))
	a := disk.GetUniqueID()
	b := disk.GetUniqueID()
	require.NotEqual(t, a, b)
}

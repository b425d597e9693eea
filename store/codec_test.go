package store

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/comparative-genomics/cactusgraph/name"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBlockRoundTripWithSegments(t *testing.T) {
	want := BlockRecord{
		Name:         name.Name(7),
		Length:       42,
		FiveEndName:  name.Name(1),
		ThreeEndName: name.Name(2),
		Segments: []SegmentRecord{
			{Name: name.Name(10), EventName: name.Name(20), HasSeq: true, SeqStart: 100, Strand: true},
			{Name: name.Name(11), EventName: name.Name(20), HasSeq: false},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeBlock(&buf, want))

	r := bufio.NewReader(&buf)
	require.NoError(t, ReadTopLevelTag(r, TagBlock))
	got, err := DecodeBlock(r)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("block round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockRoundTripWithNoSegments(t *testing.T) {
	want := BlockRecord{Name: name.Name(1), Length: 5, FiveEndName: name.Name(2), ThreeEndName: name.Name(3)}

	var buf bytes.Buffer
	require.NoError(t, EncodeBlock(&buf, want))

	r := bufio.NewReader(&buf)
	require.NoError(t, ReadTopLevelTag(r, TagBlock))
	got, err := DecodeBlock(r)
	require.NoError(t, err)
	require.Empty(t, got.Segments)

	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b []SegmentRecord) bool { return len(a) == 0 && len(b) == 0 })); diff != "" {
		t.Fatalf("block round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMetaSequenceRoundTrip(t *testing.T) {
	want := MetaSequenceRecord{
		Name:       name.Name(99),
		Start:      10,
		Length:     200,
		EventName:  name.Name(3),
		FileOffset: 123456789,
		Header:     ">chr1 human reference",
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeMetaSequence(&buf, want))

	require.NoError(t, ReadTopLevelTag(&buf, TagMetaSequence))
	got, err := DecodeMetaSequence(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("meta sequence round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBlockRejectsCorruptTag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteName(&buf, name.Name(1)))
	require.NoError(t, WriteInteger(&buf, 5))
	require.NoError(t, WriteName(&buf, name.Name(2)))
	require.NoError(t, WriteName(&buf, name.Name(3)))
	buf.WriteByte(255) // bogus tag where a segment-or-EOF tag is expected

	r := bufio.NewReader(&buf)
	_, err := DecodeBlock(r)
	require.ErrorIs(t, err, ErrSerializationCorruption)
}

func TestStringRoundTripEmptyAndNonEmpty(t *testing.T) {
	for _, s := range []string{"", "hello cactus", ">seq1 some header text"} {
		var buf bytes.Buffer
		require.NoError(t, WriteString(&buf, s))
		got, err := ReadString(&buf)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

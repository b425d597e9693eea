package store

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/comparative-genomics/cactusgraph/name"
)

// Tag identifies the record that follows in the byte stream, matching the
// single-byte discriminators cactusBlock.c / cactusMetaSequence.c write
// ahead of every record (CODE_BLOCK, CODE_SEGMENT, CODE_META_SEQUENCE, ...).
type Tag byte

const (
	TagBlock Tag = iota + 1
	TagSegment
	TagMetaSequence
	TagEOF
)

// WriteName writes n as a fixed-width 64-bit little-endian integer.
func WriteName(w io.Writer, n name.Name) error {
	return binary.Write(w, binary.LittleEndian, uint64(n))
}

// ReadName reads a Name written by WriteName.
func ReadName(r io.Reader) (name.Name, error) {
	var v uint64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return name.Name(v), nil
}

// WriteInteger writes v as a fixed-width 32-bit little-endian signed integer.
func WriteInteger(w io.Writer, v int32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// ReadInteger reads an int32 written by WriteInteger.
func ReadInteger(r io.Reader) (int32, error) {
	var v int32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// Write64BitInteger writes v as a fixed-width 64-bit little-endian signed
// integer, used for NetDisk file offsets.
func Write64BitInteger(w io.Writer, v int64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// Read64BitInteger reads an int64 written by Write64BitInteger.
func Read64BitInteger(r io.Reader) (int64, error) {
	var v int64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// WriteBool writes a single byte, 1 for true and 0 for false.
func WriteBool(w io.Writer, b bool) error {
	var v byte
	if b {
		v = 1
	}
	_, err := w.Write([]byte{v})
	return err
}

// ReadBool reads a single byte written by WriteBool.
func ReadBool(r io.Reader) (bool, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return false, err
	}
	return buf[0] != 0, nil
}

// WriteString writes a 32-bit little-endian length prefix followed by the
// raw bytes of s.
func WriteString(w io.Writer, s string) error {
	if err := WriteInteger(w, int32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// ReadString reads a string written by WriteString.
func ReadString(r io.Reader) (string, error) {
	n, err := ReadInteger(r)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", fmt.Errorf("store: %w: negative string length %d", ErrSerializationCorruption, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteTag writes a single tag byte.
func WriteTag(w io.Writer, t Tag) error {
	_, err := w.Write([]byte{byte(t)})
	return err
}

// PeekTag reads the next tag byte without the caller needing its own
// buffering: since none of this codec's records are optional within a
// stream, callers needing a true peek (look-ahead without consuming) should
// wrap r in a bufio.Reader and call PeekTagFrom instead.
func PeekTag(r io.Reader) (Tag, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Tag(buf[0]), nil
}

// byteScanner is the minimal interface PeekTagFrom needs: read one byte and,
// if it turns out not to match, push it back. *bufio.Reader satisfies this.
type byteScanner interface {
	io.Reader
	io.ByteScanner
}

// PeekTagFrom reads the next tag from r without consuming it, for decoders
// that need to decide whether a record is present (e.g. whether a Block's
// Segment list has another entry) before committing to decode it.
func PeekTagFrom(r byteScanner) (Tag, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if err := r.UnreadByte(); err != nil {
		return 0, err
	}
	return Tag(b), nil
}

// SegmentRecord is the on-the-wire shape of a Segment nested inside a Block
// record, grounded on cactusBlock.c's segment_writeBinaryRepresentation:
// name, event name, then an optional sequence-coordinate pair.
type SegmentRecord struct {
	Name      name.Name
	EventName name.Name
	HasSeq    bool
	SeqStart  int32
	Strand    bool
}

// EncodeSegment writes a SegmentRecord preceded by TagSegment.
func EncodeSegment(w io.Writer, s SegmentRecord) error {
	if err := WriteTag(w, TagSegment); err != nil {
		return err
	}
	if err := WriteName(w, s.Name); err != nil {
		return err
	}
	if err := WriteName(w, s.EventName); err != nil {
		return err
	}
	if err := WriteBool(w, s.HasSeq); err != nil {
		return err
	}
	if !s.HasSeq {
		return nil
	}
	if err := WriteInteger(w, s.SeqStart); err != nil {
		return err
	}
	return WriteBool(w, s.Strand)
}

// DecodeSegment reads a SegmentRecord whose TagSegment has already been
// consumed by the caller (typically via PeekTagFrom in DecodeBlock's loop).
func DecodeSegment(r io.Reader) (SegmentRecord, error) {
	var s SegmentRecord
	var err error
	if s.Name, err = ReadName(r); err != nil {
		return s, err
	}
	if s.EventName, err = ReadName(r); err != nil {
		return s, err
	}
	if s.HasSeq, err = ReadBool(r); err != nil {
		return s, err
	}
	if !s.HasSeq {
		return s, nil
	}
	if s.SeqStart, err = ReadInteger(r); err != nil {
		return s, err
	}
	if s.Strand, err = ReadBool(r); err != nil {
		return s, err
	}
	return s, nil
}

// BlockRecord is the on-the-wire shape of a Block, grounded on
// cactusBlock.c's block_writeBinaryRepresentation: name, length, the two
// end names, followed by zero or more Segment records.
type BlockRecord struct {
	Name         name.Name
	Length       int32
	FiveEndName  name.Name
	ThreeEndName name.Name
	Segments     []SegmentRecord
}

// EncodeBlock writes a BlockRecord preceded by TagBlock, followed by its
// segments (each tagged TagSegment) and a trailing TagEOF sentinel marking
// the end of the segment list.
func EncodeBlock(w io.Writer, b BlockRecord) error {
	if err := WriteTag(w, TagBlock); err != nil {
		return err
	}
	if err := WriteName(w, b.Name); err != nil {
		return err
	}
	if err := WriteInteger(w, b.Length); err != nil {
		return err
	}
	if err := WriteName(w, b.FiveEndName); err != nil {
		return err
	}
	if err := WriteName(w, b.ThreeEndName); err != nil {
		return err
	}
	for _, s := range b.Segments {
		if err := EncodeSegment(w, s); err != nil {
			return err
		}
	}
	return WriteTag(w, TagEOF)
}

// DecodeBlock reads a BlockRecord whose TagBlock has already been consumed
// by the caller. It reads segments until it sees TagEOF rather than
// TagSegment, the decoder-side mirror of the original's "peek the next
// tag, stop if it isn't a segment" loop.
func DecodeBlock(r byteScanner) (BlockRecord, error) {
	var b BlockRecord
	var err error
	if b.Name, err = ReadName(r); err != nil {
		return b, err
	}
	if b.Length, err = ReadInteger(r); err != nil {
		return b, err
	}
	if b.FiveEndName, err = ReadName(r); err != nil {
		return b, err
	}
	if b.ThreeEndName, err = ReadName(r); err != nil {
		return b, err
	}
	for {
		tag, err := PeekTagFrom(r)
		if err != nil {
			return b, err
		}
		// Consume the peeked byte either way: a segment tag or the
		// terminating EOF sentinel.
		if _, err := PeekTag(r); err != nil {
			return b, err
		}
		if tag == TagEOF {
			break
		}
		if tag != TagSegment {
			return b, fmt.Errorf("store: %w: expected segment or EOF tag inside block, got %d", ErrSerializationCorruption, tag)
		}
		seg, err := DecodeSegment(r)
		if err != nil {
			return b, err
		}
		b.Segments = append(b.Segments, seg)
	}
	return b, nil
}

// MetaSequenceRecord is the on-the-wire shape of a MetaSequence, grounded on
// cactusMetaSequence.c's metaSequence_writeBinaryRepresentation: name,
// start, length, event name, NetDisk file offset, then the header string.
type MetaSequenceRecord struct {
	Name       name.Name
	Start      int32
	Length     int32
	EventName  name.Name
	FileOffset int64
	Header     string
}

// EncodeMetaSequence writes a MetaSequenceRecord preceded by TagMetaSequence.
func EncodeMetaSequence(w io.Writer, m MetaSequenceRecord) error {
	if err := WriteTag(w, TagMetaSequence); err != nil {
		return err
	}
	if err := WriteName(w, m.Name); err != nil {
		return err
	}
	if err := WriteInteger(w, m.Start); err != nil {
		return err
	}
	if err := WriteInteger(w, m.Length); err != nil {
		return err
	}
	if err := WriteName(w, m.EventName); err != nil {
		return err
	}
	if err := Write64BitInteger(w, m.FileOffset); err != nil {
		return err
	}
	return WriteString(w, m.Header)
}

// DecodeMetaSequence reads a MetaSequenceRecord whose TagMetaSequence has
// already been consumed by the caller.
func DecodeMetaSequence(r io.Reader) (MetaSequenceRecord, error) {
	var m MetaSequenceRecord
	var err error
	if m.Name, err = ReadName(r); err != nil {
		return m, err
	}
	if m.Start, err = ReadInteger(r); err != nil {
		return m, err
	}
	if m.Length, err = ReadInteger(r); err != nil {
		return m, err
	}
	if m.EventName, err = ReadName(r); err != nil {
		return m, err
	}
	if m.FileOffset, err = Read64BitInteger(r); err != nil {
		return m, err
	}
	if m.Header, err = ReadString(r); err != nil {
		return m, err
	}
	return m, nil
}

// ReadTopLevelTag reads and validates the tag at the start of an
// independently-framed record (as opposed to one nested inside another,
// like Segment inside Block), returning ErrSerializationCorruption if it
// doesn't match want.
func ReadTopLevelTag(r io.Reader, want Tag) error {
	got, err := PeekTag(r)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("store: %w: expected tag %d, got %d", ErrSerializationCorruption, want, got)
	}
	return nil
}

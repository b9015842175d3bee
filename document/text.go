package document

import (
	"sort"
	"strings"
)

// Chunk size targets, in code points. Splitting long inserts into chunks
// keeps Splice cost proportional to the affected region, not the document.
const (
	// TargetChunkChars is the preferred chunk size.
	TargetChunkChars = 1024

	// MinChunkChars is the threshold below which neighboring chunks are
	// merged during rebuilds.
	MinChunkChars = 256
)

// chunk is one contiguous run of text with cached metrics.
type chunk struct {
	text     string
	chars    Pos // code points in text, cached at construction
	newlines int // '\n' count in text, cached at construction
}

func newChunk(s string) chunk {
	return chunk{
		text:     s,
		chars:    CharLen(s),
		newlines: strings.Count(s, "\n"),
	}
}

// Text is an immutable code-point-addressed text value built from chunks
// with cached per-chunk metrics and prefix sums for O(log n) position
// lookup. Operations return new Text values; originals are never modified.
type Text struct {
	chunks []chunk

	// Prefix sums: cumChars[i] is the total chars in chunks[:i+1],
	// cumLines[i] the total newlines. Both are len(chunks) long.
	cumChars []Pos
	cumLines []int
}

// New returns an empty text.
func New() Text {
	return Text{}
}

// FromString builds a text from s.
func FromString(s string) Text {
	var b Builder
	b.WriteString(s)
	return b.Build()
}

// Len returns the total length in code points.
func (t Text) Len() Pos {
	if len(t.cumChars) == 0 {
		return 0
	}
	return t.cumChars[len(t.cumChars)-1]
}

// IsEmpty returns true if the text has no content.
func (t Text) IsEmpty() bool {
	return t.Len() == 0
}

// String returns the full text. Use sparingly for large documents.
func (t Text) String() string {
	var sb strings.Builder
	for _, c := range t.chunks {
		sb.WriteString(c.text)
	}
	return sb.String()
}

// chunkAt returns the index of the chunk containing pos and the char
// offset of that chunk's start. A position equal to Len() resolves to the
// last chunk.
func (t Text) chunkAt(pos Pos) (int, Pos) {
	i := sort.Search(len(t.cumChars), func(i int) bool {
		return t.cumChars[i] > pos
	})
	if i == len(t.chunks) {
		i = len(t.chunks) - 1
	}
	start := Pos(0)
	if i > 0 {
		start = t.cumChars[i-1]
	}
	return i, start
}

// Slice returns the text in [start, end). Out-of-range bounds are clamped.
func (t Text) Slice(start, end Pos) string {
	total := t.Len()
	if start < 0 {
		start = 0
	}
	if end > total {
		end = total
	}
	if start >= end {
		return ""
	}

	ci, chunkStart := t.chunkAt(start)
	var sb strings.Builder
	pos := chunkStart
	for i := ci; i < len(t.chunks) && pos < end; i++ {
		c := t.chunks[i]
		lo := Pos(0)
		if start > pos {
			lo = start - pos
		}
		hi := c.chars
		if end-pos < hi {
			hi = end - pos
		}
		if lo == 0 && hi == c.chars {
			sb.WriteString(c.text)
		} else {
			sb.WriteString(SliceChars(c.text, lo, hi))
		}
		pos += c.chars
	}
	return sb.String()
}

// Splice replaces [start, end) with text, returning the new value.
// Untouched chunks are shared between the old and new values.
func (t Text) Splice(start, end Pos, text string) Text {
	total := t.Len()
	if start < 0 {
		start = 0
	}
	if end > total {
		end = total
	}
	if end < start {
		end = start
	}

	var b Builder
	if len(t.chunks) == 0 {
		b.WriteString(text)
		return b.Build()
	}

	ci, chunkStart := t.chunkAt(start)
	// Whole chunks before the edit are reused as-is.
	b.appendChunks(t.chunks[:ci])
	if start > chunkStart {
		b.WriteString(SliceChars(t.chunks[ci].text, 0, start-chunkStart))
	}

	b.WriteString(text)

	// Skip chunks consumed by the deletion, keep the tail.
	pos := chunkStart
	i := ci
	for i < len(t.chunks) && pos+t.chunks[i].chars <= end {
		pos += t.chunks[i].chars
		i++
	}
	if i < len(t.chunks) {
		if end > pos {
			b.WriteString(SliceChars(t.chunks[i].text, end-pos, t.chunks[i].chars))
		} else {
			b.appendChunk(t.chunks[i])
		}
		b.appendChunks(t.chunks[i+1:])
	}
	return b.Build()
}

// Builder accumulates text and produces an immutable Text.
// The zero value is ready to use.
type Builder struct {
	chunks  []chunk
	pending strings.Builder
}

// WriteString appends s to the builder.
func (b *Builder) WriteString(s string) {
	b.pending.WriteString(s)
	if b.pending.Len() >= TargetChunkChars*4 {
		b.flush()
	}
}

// appendChunk appends an already-built chunk, flushing pending text first.
func (b *Builder) appendChunk(c chunk) {
	if c.chars == 0 {
		return
	}
	if c.chars < MinChunkChars {
		b.pending.WriteString(c.text)
		return
	}
	b.flush()
	b.chunks = append(b.chunks, c)
}

func (b *Builder) appendChunks(cs []chunk) {
	for _, c := range cs {
		b.appendChunk(c)
	}
}

// flush converts pending text into chunks.
func (b *Builder) flush() {
	s := b.pending.String()
	b.pending.Reset()
	for len(s) > 0 {
		cut := CharIndex(s, TargetChunkChars)
		b.chunks = append(b.chunks, newChunk(s[:cut]))
		s = s[cut:]
	}
}

// Build finalizes the builder and returns the Text.
// The builder must not be reused after Build.
func (b *Builder) Build() Text {
	b.flush()
	t := Text{
		chunks:   b.chunks,
		cumChars: make([]Pos, len(b.chunks)),
		cumLines: make([]int, len(b.chunks)),
	}
	chars, lines := Pos(0), 0
	for i, c := range b.chunks {
		chars += c.chars
		lines += c.newlines
		t.cumChars[i] = chars
		t.cumLines[i] = lines
	}
	return t
}

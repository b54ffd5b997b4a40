package rs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tomerfiliba-org/reedsolomon/gf"
)

func symbolsOf(bs ...byte) []gf.Symbol {
	out := make([]gf.Symbol, len(bs))
	for i, b := range bs {
		out[i] = gf.Symbol(b)
	}
	return out
}

func stringSymbols(s string) []gf.Symbol {
	return symbolsOf([]byte(s)...)
}

// TestEncodeChunkS1 and TestEncodeChunkS2 check spec.md's literal
// end-to-end vectors against the default parameters (nsym=10, fcr=0,
// prim=0x11D, alpha=2, m=8).
func TestEncodeChunkS1(t *testing.T) {
	f := stdField(t)
	e := NewEncoder(f)
	gen := GeneratorPoly(f, 10, 0)

	got, err := e.EncodeChunk(symbolsOf(1, 2, 3, 4), gen)
	require.NoError(t, err)
	want := symbolsOf(0x01, 0x02, 0x03, 0x04, 0x2C, 0x9D, 0x1C, 0x2B, 0x3D, 0xF8, 0x68, 0xFA, 0x98, 0x4D)
	require.Equal(t, want, got)
}

func TestEncodeChunkS2(t *testing.T) {
	f := stdField(t)
	e := NewEncoder(f)
	gen := GeneratorPoly(f, 10, 0)

	got, err := e.EncodeChunk(stringSymbols("hello world"), gen)
	require.NoError(t, err)
	want := append(stringSymbols("hello world"), symbolsOf(0xED, 0x25, 0x54, 0xC4, 0xFD, 0xFD, 0x89, 0xF3, 0xA8, 0xAA)...)
	require.Equal(t, want, got)
}

func TestEncodeChunkS5(t *testing.T) {
	f := stdField(t)
	e := NewEncoder(f)
	gen := GeneratorPoly(f, 12, 0)

	got, err := e.EncodeChunk(stringSymbols("hello world"), gen)
	require.NoError(t, err)
	want := append(stringSymbols("hello world"), symbolsOf(0x3F, 0x41, 0x79, 0xB2, 0xBC, 0xDC, 0x01, 0x71, 0xB9, 0xE3, 0xE2, 0x3D)...)
	require.Equal(t, want, got)
}

func TestEncodeChunkIsSystematic(t *testing.T) {
	f := stdField(t)
	e := NewEncoder(f)
	rapid.Check(t, func(t *rapid.T) {
		nsym := rapid.IntRange(1, 20).Draw(t, "nsym")
		n := rapid.IntRange(0, 40).Draw(t, "msgLen")
		msg := make([]gf.Symbol, n)
		for i := range msg {
			msg[i] = gf.Symbol(rapid.Uint8().Draw(t, "sym"))
		}
		gen := GeneratorPoly(f, nsym, 0)
		out, err := e.EncodeChunk(msg, gen)
		require.NoError(t, err)
		require.Equal(t, msg, out[:n])
		require.Len(t, out, n+nsym)
	})
}

func TestEncodeChunkRejectsOverLongMessage(t *testing.T) {
	f := stdField(t)
	e := NewEncoder(f)
	gen := GeneratorPoly(f, 10, 0)
	msg := make([]gf.Symbol, 250)
	_, err := e.EncodeChunk(msg, gen)
	require.ErrorIs(t, err, ErrMessageTooLong)
}

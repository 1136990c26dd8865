package program

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrotype/internal/report"
)

func TestDisassembleRoundTrip(t *testing.T) {
	original := New(0x0801)
	original.Lines = []Line{
		{Number: 10, Body: []byte{0x99, 0x22, 0x48, 0x49, 0x22}},
		{Number: 20, Body: []byte{0x89, 0x31, 0x30}},
		{Number: 15, Body: []byte{0x8f}}, // out of order on purpose
	}

	image, err := original.Assemble()
	assert.NoError(t, err)

	prg, diagnostics, err := Disassemble(image, 0x0801)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(diagnostics))
	assert.Equal(t, original.Lines[0].Number, prg.Lines[0].Number)
	assert.Equal(t, original.Lines[0].Body, prg.Lines[0].Body)
	assert.Equal(t, original.Lines[1].Number, prg.Lines[1].Number)
	assert.Equal(t, original.Lines[1].Body, prg.Lines[1].Body)
	assert.Equal(t, original.Lines[2].Number, prg.Lines[2].Number)
	assert.Equal(t, original.Lines[2].Body, prg.Lines[2].Body)
}

func TestDisassembleWithoutLoadAddressPrefix(t *testing.T) {
	image := []byte{
		0x0b, 0x08, 0x0a, 0x00, 0x99, 0x22, 0x48, 0x49, 0x22, 0x00,
		0x00, 0x00,
	}

	prg, diagnostics, err := Disassemble(image, 0x0801)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(diagnostics))
	assert.Equal(t, 1, len(prg.Lines))
	assert.Equal(t, uint16(10), prg.Lines[0].Number)
}

func TestDisassemblePointerMismatch(t *testing.T) {
	// stored pointer is off by two, the content is intact
	image := []byte{
		0x01, 0x08,
		0x0d, 0x08, 0x0a, 0x00, 0x99, 0x22, 0x48, 0x49, 0x22, 0x00,
		0x00, 0x00,
	}

	prg, diagnostics, err := Disassemble(image, 0x0801)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(prg.Lines))
	assert.Equal(t, uint16(10), prg.Lines[0].Number)
	assert.Equal(t, []byte{0x99, 0x22, 0x48, 0x49, 0x22}, prg.Lines[0].Body)

	assert.Equal(t, 1, len(diagnostics))
	assert.Equal(t, report.PointerMismatch, diagnostics[0].Kind)
	assert.Equal(t, 10, diagnostics[0].Line)
}

func TestDisassembleTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "missing body terminator",
			data: []byte{0x01, 0x08, 0x0b, 0x08, 0x0a, 0x00, 0x99, 0x22},
		},
		{
			name: "cut inside line number",
			data: []byte{0x01, 0x08, 0x0b, 0x08, 0x0a},
		},
		{
			name: "cut inside pointer",
			data: []byte{0x01, 0x08, 0x0b},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Disassemble(tt.data, 0x0801)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrTruncatedProgram))
		})
	}
}

func TestDisassembleTruncatedReportsLastLine(t *testing.T) {
	data := []byte{
		0x01, 0x08,
		0x07, 0x08, 0x0a, 0x00, 0x41, 0x00, // complete line 10
		0x10, 0x08, 0x14, 0x00, 0x42, // line 20 missing its terminator
	}

	_, _, err := Disassemble(data, 0x0801)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrTruncatedProgram))
	assert.ErrorContains(t, err, "line 10")
}

func TestDisassembleExhaustedBufferEndsProgram(t *testing.T) {
	data := []byte{
		0x01, 0x08,
		0x07, 0x08, 0x0a, 0x00, 0x41, 0x00,
	}

	prg, diagnostics, err := Disassemble(data, 0x0801)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(diagnostics))
	assert.Equal(t, 1, len(prg.Lines))
}

func TestDisassembleEmptyProgram(t *testing.T) {
	prg, diagnostics, err := Disassemble([]byte{0x01, 0x08, 0x00, 0x00}, 0x0801)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(diagnostics))
	assert.Equal(t, 0, len(prg.Lines))
}

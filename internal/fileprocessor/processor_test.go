package fileprocessor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrotype/internal/checksum"
	"github.com/retroenv/retrotype/internal/dialect"
	"github.com/retroenv/retrotype/internal/listing"
	"github.com/retroenv/retrotype/internal/options"
	"github.com/retroenv/retrotype/internal/report"
)

// tokenized image of `10 PRINT"HELLO"` loaded at $0801
var helloImage = []byte{
	0x01, 0x08, // load address
	0x0e, 0x08, // next line pointer
	0x0a, 0x00, // line number 10
	0x99, 0x22, 0x48, 0x45, 0x4c, 0x4c, 0x4f, 0x22, // PRINT"HELLO"
	0x00,       // line terminator
	0x00, 0x00, // end of program
}

func testConversion(t *testing.T, detokenize bool) options.Conversion {
	t.Helper()

	dia, err := dialect.New(dialect.C64)
	assert.NoError(t, err)

	return options.Conversion{
		Dialect:     dia,
		Scheme:      checksum.Ahoy2,
		Convention:  listing.AhoyConvention(),
		LoadAddress: dia.LoadBase,
		Detokenize:  detokenize,
	}
}

func TestProcessFileTokenize(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hello.bas")
	output := filepath.Join(dir, "hello.prg")
	checkFile := filepath.Join(dir, "hello.chk")

	assert.NoError(t, os.WriteFile(input, []byte("10 PRINT\"HELLO\"\n"), 0o644))

	opts := options.Program{
		Input:        input,
		Output:       output,
		ChecksumFile: checkFile,
		Quiet:        true,
	}

	err := ProcessFile(log.NewTestLogger(t), opts, testConversion(t, false))
	assert.NoError(t, err)

	image, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, helloImage, image)

	checks, err := os.ReadFile(checkFile)
	assert.NoError(t, err)
	assert.Equal(t, "10 EO\n\nLines: 1\n", string(checks))
}

func TestProcessFileTokenizeWithTape(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hello.bas")
	tapeFile := filepath.Join(dir, "hello.wav")

	assert.NoError(t, os.WriteFile(input, []byte("10 PRINT\"HELLO\"\n"), 0o644))

	opts := options.Program{
		Input:    input,
		Output:   filepath.Join(dir, "hello.prg"),
		TapeFile: tapeFile,
		Quiet:    true,
	}

	err := ProcessFile(log.NewTestLogger(t), opts, testConversion(t, false))
	assert.NoError(t, err)

	data, err := os.ReadFile(tapeFile)
	assert.NoError(t, err)
	assert.True(t, len(data) > 4)
	assert.Equal(t, "RIFF", string(data[:4]))
}

func TestConvertRecordsChecksumMismatch(t *testing.T) {
	conv := testConversion(t, false)
	records := []listing.Record{
		{Number: 10, Text: `PRINT"HELLO"`, Check: "AA"},
		{Number: 20, Text: "GOTO10"},
	}

	rep := report.New()
	prg, checks := convertRecords(conv, records, rep)

	// the wrong printed code is reported, both lines still convert
	assert.Equal(t, 2, len(prg.Lines))
	assert.Equal(t, 1, rep.Len())
	diag := rep.Diagnostics()[0]
	assert.Equal(t, 10, diag.Line)
	assert.Equal(t, report.ChecksumMismatch, diag.Kind)
	assert.Equal(t, "expected EO, got AA", diag.Detail)
	assert.Equal(t, "EO", checks[0].Code)
}

func TestConvertRecordsChecksumMatch(t *testing.T) {
	conv := testConversion(t, false)
	records := []listing.Record{
		{Number: 10, Text: `PRINT"HELLO"`, Check: "EO"},
	}

	rep := report.New()
	_, checks := convertRecords(conv, records, rep)
	assert.Equal(t, 0, rep.Len())
	assert.Equal(t, "EO", checks[0].Code)
}

func TestProcessFileTokenizeTrailingCodes(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hello.bas")
	output := filepath.Join(dir, "hello.prg")

	// printed check code is wrong, the line must still convert cleanly
	assert.NoError(t, os.WriteFile(input, []byte("10 PRINT\"HELLO\"  AA\n"), 0o644))

	conv := testConversion(t, false)
	conv.Convention.Position = listing.CodeTrailing

	opts := options.Program{
		Input:  input,
		Output: output,
		Quiet:  true,
	}

	err := ProcessFile(log.NewTestLogger(t), opts, conv)
	assert.NoError(t, err)

	// the code was stripped off the line, not tokenized into the body
	image, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, helloImage, image)
}

func TestProcessFileDetokenize(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hello.prg")
	output := filepath.Join(dir, "hello.bas")

	assert.NoError(t, os.WriteFile(input, helloImage, 0o644))

	opts := options.Program{
		Input:  input,
		Output: output,
		Quiet:  true,
	}

	err := ProcessFile(log.NewTestLogger(t), opts, testConversion(t, true))
	assert.NoError(t, err)

	text, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, "10 PRINT \"HELLO\"\n", string(text))
}

func TestProcessFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	source := "10 A=1\n20 PRINT \"HI\"\n30 GOTO 10\n"

	input := filepath.Join(dir, "prog.bas")
	prg := filepath.Join(dir, "prog.prg")
	back := filepath.Join(dir, "back.bas")

	assert.NoError(t, os.WriteFile(input, []byte(source), 0o644))

	err := ProcessFile(log.NewTestLogger(t),
		options.Program{Input: input, Output: prg, Quiet: true},
		testConversion(t, false))
	assert.NoError(t, err)

	err = ProcessFile(log.NewTestLogger(t),
		options.Program{Input: prg, Output: back, Quiet: true},
		testConversion(t, true))
	assert.NoError(t, err)

	text, err := os.ReadFile(back)
	assert.NoError(t, err)
	assert.Equal(t, source, string(text))
}

func TestProcessFileMissingInput(t *testing.T) {
	opts := options.Program{
		Input: filepath.Join(t.TempDir(), "missing.bas"),
		Quiet: true,
	}

	err := ProcessFile(log.NewTestLogger(t), opts, testConversion(t, false))
	assert.ErrorContains(t, err, "opening file")
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "game.prg", GenerateOutputFilename("game.bas", false))
	assert.Equal(t, "game.bas", GenerateOutputFilename("game.prg", true))
	assert.Equal(t, "listing.prg", GenerateOutputFilename("listing", false))
}

func TestPrintBannerQuiet(t *testing.T) {
	// must not log anything in quiet mode
	PrintBanner(log.NewTestLogger(t), options.Program{Quiet: true}, "1.0", "abc", "")
}

func TestProcessFileDefaultOutputName(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hello.bas")

	assert.NoError(t, os.WriteFile(input, []byte("10 PRINT\"HELLO\"\n"), 0o644))

	err := ProcessFile(log.NewTestLogger(t),
		options.Program{Input: input, Quiet: true},
		testConversion(t, false))
	assert.NoError(t, err)

	image, err := os.ReadFile(strings.TrimSuffix(input, ".bas") + ".prg")
	assert.NoError(t, err)
	assert.Equal(t, helloImage, image)
}

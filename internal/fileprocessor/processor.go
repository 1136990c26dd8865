// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrotype/internal/basic"
	"github.com/retroenv/retrotype/internal/listing"
	"github.com/retroenv/retrotype/internal/options"
	"github.com/retroenv/retrotype/internal/program"
	"github.com/retroenv/retrotype/internal/report"
	"github.com/retroenv/retrotype/internal/tape"
)

// ProcessFile runs one complete conversion: listing text to program image or
// the reverse, depending on the resolved direction. Per line diagnostics are
// logged and do not abort the conversion, only format fatal errors do.
func ProcessFile(logger *log.Logger, opts options.Program, conv options.Conversion) error {
	if conv.Detokenize {
		return detokenizeFile(logger, opts, conv)
	}
	return tokenizeFile(logger, opts, conv)
}

// GenerateOutputFilename derives the output name from the input name.
func GenerateOutputFilename(inputFile string, detokenize bool) string {
	ext := filepath.Ext(inputFile)
	stem := inputFile[:len(inputFile)-len(ext)]
	if detokenize {
		return stem + ".bas"
	}
	return stem + ".prg"
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("retrotype",
		log.String("version", buildinfo.Version(version, commit, date)))
}

func tokenizeFile(logger *log.Logger, opts options.Program, conv options.Conversion) error {
	file, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	records, diagnostics, err := listing.NewParser(conv.Convention).Parse(file)
	if err != nil {
		return fmt.Errorf("parsing listing: %w", err)
	}

	rep := report.New()
	rep.Append(diagnostics...)

	prg, checks := convertRecords(conv, records, rep)

	image, err := prg.Assemble()
	if err != nil {
		return fmt.Errorf("assembling program: %w", err)
	}

	output := opts.Output
	if output == "" {
		output = GenerateOutputFilename(opts.Input, false)
	}
	if err := os.WriteFile(output, image, 0o644); err != nil {
		return fmt.Errorf("writing program file %s: %w", output, err)
	}
	logger.Info("Program written",
		log.String("file", output),
		log.Int("lines", len(prg.Lines)),
		log.Int("bytes", len(image)))

	if err := writeChecksumFile(opts, checks); err != nil {
		return err
	}
	if err := writeTapeFile(logger, opts, image); err != nil {
		return err
	}

	logDiagnostics(logger, rep)

	if !opts.Quiet {
		if err := listing.WriteChecksumMatrix(os.Stdout, checks, listing.TerminalWidth()); err != nil {
			return fmt.Errorf("printing check codes: %w", err)
		}
	}
	return nil
}

// convertRecords tokenizes parsed listing records into a program and computes
// the per line check codes, verifying any printed codes the listing supplied.
// A mismatch is a diagnostic, the line still converts.
func convertRecords(conv options.Conversion, records []listing.Record, rep *report.Report) (*program.Program, []listing.LineCheck) {
	codec := basic.NewCodec(conv.Dialect.Table)
	prg := program.New(conv.LoadAddress)
	checks := make([]listing.LineCheck, 0, len(records))

	for _, record := range records {
		body, problems := codec.Tokenize(record.Text)
		for _, problem := range problems {
			rep.Add(record.Number, report.UnknownToken, "%s", problem)
		}

		number := uint16(record.Number)
		computed := conv.Scheme.Compute(number, body)
		if record.Check != "" {
			if _, ok := conv.Scheme.Verify(number, body, record.Check); !ok {
				rep.Add(record.Number, report.ChecksumMismatch,
					"expected %s, got %s", computed, record.Check)
			}
		}

		prg.Lines = append(prg.Lines, program.Line{
			Number: number,
			Body:   body,
			Check:  record.Check,
		})
		checks = append(checks, listing.LineCheck{Number: record.Number, Code: computed})
	}

	return prg, checks
}

func detokenizeFile(logger *log.Logger, opts options.Program, conv options.Conversion) error {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	prg, diagnostics, err := program.Disassemble(data, conv.LoadAddress)
	if err != nil {
		return fmt.Errorf("disassembling program: %w", err)
	}

	rep := report.New()
	rep.Append(diagnostics...)

	codec := basic.NewCodec(conv.Dialect.Table)
	records := make([]listing.Record, 0, len(prg.Lines))
	checks := make([]listing.LineCheck, 0, len(prg.Lines))

	for _, line := range prg.Lines {
		text, problems := codec.Detokenize(line.Body)
		for _, problem := range problems {
			rep.Add(int(line.Number), report.UnknownToken, "%s", problem)
		}

		code := conv.Scheme.Compute(line.Number, line.Body)
		record := listing.Record{
			Number: int(line.Number),
			Text:   text,
		}
		if conv.Convention.Position != listing.CodeNone {
			record.Check = code
		}
		records = append(records, record)
		checks = append(checks, listing.LineCheck{Number: int(line.Number), Code: code})
	}

	output := opts.Output
	if output == "" {
		output = GenerateOutputFilename(opts.Input, true)
	}
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating listing file %s: %w", output, err)
	}
	defer func() { _ = file.Close() }()

	if err := listing.NewWriter(conv.Convention).WriteListing(file, records); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	logger.Info("Listing written",
		log.String("file", output),
		log.Int("lines", len(records)))

	if err := writeChecksumFile(opts, checks); err != nil {
		return err
	}

	logDiagnostics(logger, rep)

	if !opts.Quiet {
		if err := listing.WriteChecksumMatrix(os.Stdout, checks, listing.TerminalWidth()); err != nil {
			return fmt.Errorf("printing check codes: %w", err)
		}
	}
	return nil
}

func writeChecksumFile(opts options.Program, checks []listing.LineCheck) error {
	if opts.ChecksumFile == "" {
		return nil
	}

	file, err := os.Create(opts.ChecksumFile)
	if err != nil {
		return fmt.Errorf("creating check code file %s: %w", opts.ChecksumFile, err)
	}
	defer func() { _ = file.Close() }()

	if err := listing.WriteChecksumFile(file, checks); err != nil {
		return fmt.Errorf("writing check code file: %w", err)
	}
	return nil
}

func writeTapeFile(logger *log.Logger, opts options.Program, image []byte) error {
	if opts.TapeFile == "" {
		return nil
	}

	file, err := os.Create(opts.TapeFile)
	if err != nil {
		return fmt.Errorf("creating tape file %s: %w", opts.TapeFile, err)
	}
	defer func() { _ = file.Close() }()

	if err := tape.Write(file, image); err != nil {
		return fmt.Errorf("writing tape file: %w", err)
	}
	logger.Info("Tape written", log.String("file", opts.TapeFile))
	return nil
}

func logDiagnostics(logger *log.Logger, rep *report.Report) {
	for _, diagnostic := range rep.Diagnostics() {
		logger.Warn(diagnostic.String())
	}
	if rep.Len() > 0 {
		logger.Warn("Listing has problems", log.Int("count", rep.Len()))
	}
}

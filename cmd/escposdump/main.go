// cmd/escposdump/main.go

// Command escposdump decodes captured ESC/POS .bin files offline.
//
//	escposdump [options] file.bin ...
//
// Without -T the decoded receipt text is written; with -T every command is
// listed with its bytes and description.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"escpos-service/pkg/escpos"
	"escpos-service/pkg/escpos/codepage"
)

type options struct {
	device   string
	output   string
	listing  bool
	codePage int
	ics      uint
	kanji    string
	sbcs     int
	mbcs     int
	display  int
	fonts    bool
	list     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("escposdump", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.device, "D", "printer", "initial device type: printer or linedisplay")
	fs.StringVar(&o.output, "O", "", "write output to this file instead of stdout")
	fs.BoolVar(&o.listing, "T", false, "list tokenized commands instead of the decoded text")
	fs.IntVar(&o.codePage, "C", escpos.DefaultCodePage, "initial code page")
	fs.UintVar(&o.ics, "I", 0, "initial international character set")
	fs.StringVar(&o.kanji, "K", "", "initial kanji mode: ON or OFF (default follows the code page)")
	fs.IntVar(&o.sbcs, "S", 1, "SBCS font size pattern 1-9")
	fs.IntVar(&o.mbcs, "M", 1, "CJK MBCS font size pattern 1-5")
	fs.IntVar(&o.display, "V", 1, "line display font size pattern 1-2")
	fs.BoolVar(&o.fonts, "F", false, "print the supported font size patterns")
	fs.BoolVar(&o.list, "L", false, "print the code page and character set tables")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: escposdump [options] file.bin ...")
		fs.PrintDefaults()
	}

	files, err := parseInterleaved(fs, args)
	if err != nil {
		return 2
	}

	logger := newLogger(stderr)
	defer logger.Sync()

	if o.fonts {
		fmt.Fprint(stdout, fontPatternHelp)
	}
	if o.list {
		printTables(stdout)
	}
	if len(files) == 0 {
		if o.fonts || o.list {
			return 0
		}
		fs.Usage()
		return 2
	}

	cfg, err := o.config()
	if err != nil {
		logger.Error("Invalid options", zap.Error(err))
		return 2
	}
	decoder, err := escpos.New(cfg, escpos.WithLogger(logger))
	if err != nil {
		logger.Error("Invalid options", zap.Error(err))
		return 2
	}

	out := stdout
	if o.output != "" {
		f, err := os.Create(o.output)
		if err != nil {
			logger.Error("Failed to create output file", zap.Error(err))
			return 1
		}
		defer f.Close()
		out = f
	}

	status := 0
	for _, path := range files {
		if err := dump(out, decoder, path, o.listing, len(files) > 1); err != nil {
			logger.Error("Failed to decode file", zap.String("file", path), zap.Error(err))
			status = 1
		}
	}
	return status
}

// parseInterleaved lets the input file come before or between options.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var files []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return files, nil
		}
		files = append(files, args[0])
		args = args[1:]
	}
}

func (o options) config() (escpos.Config, error) {
	device, err := escpos.ParseDeviceType(o.device)
	if err != nil {
		return escpos.Config{}, err
	}
	if o.ics > 255 {
		return escpos.Config{}, fmt.Errorf("international character set %d out of range", o.ics)
	}

	cfg := escpos.Config{
		Device:   device,
		CodePage: o.codePage,
		ICS:      byte(o.ics),
		Kanji:    codepage.IsMultiByte(o.codePage),
		Fonts:    escpos.FontPatterns{SBCS: o.sbcs, MBCS: o.mbcs, Display: o.display},
	}
	switch strings.ToUpper(o.kanji) {
	case "":
	case "ON":
		cfg.Kanji = true
	case "OFF":
		cfg.Kanji = false
	default:
		return escpos.Config{}, fmt.Errorf("-K takes ON or OFF, not %q", o.kanji)
	}
	return cfg, cfg.Validate()
}

func dump(w io.Writer, decoder *escpos.Decoder, path string, listing, header bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return errors.New("file is empty")
	}

	result, err := decoder.Decode(raw)
	if err != nil {
		return err
	}

	if header {
		fmt.Fprintf(w, "==> %s <==\n", path)
	}
	if !listing {
		_, err = io.WriteString(w, result.Text)
		return err
	}

	for i, r := range result.Records {
		fmt.Fprintf(w, "%05d %-8s %-48s %s", i, r.Category, r.Type, r.Hex())
		if r.Description != "" {
			fmt.Fprintf(w, " : %s", r.Description)
		}
		if r.Text != "" {
			fmt.Fprintf(w, " : %q", r.Text)
		}
		fmt.Fprintln(w)
		for _, b := range r.Bitmaps {
			fmt.Fprintf(w, "      bitmap %s\n", b)
		}
	}
	for _, derr := range result.Errors {
		fmt.Fprintf(w, "error: %v\n", derr)
	}
	return nil
}

func printTables(w io.Writer) {
	fmt.Fprintln(w, "Printer code tables (ESC t n):")
	for n := 0; n < 256; n++ {
		if id, ok := codepage.PrinterCodeTable(byte(n)); ok {
			fmt.Fprintf(w, "  %3d: %5d %s\n", n, id, codepage.PrinterCodeTableName(byte(n)))
		}
	}
	fmt.Fprintln(w, "\nLine display code tables (ESC t n):")
	for n := 0; n < 256; n++ {
		if id, ok := codepage.DisplayCodeTable(byte(n)); ok {
			fmt.Fprintf(w, "  %3d: %5d %s\n", n, id, codepage.DisplayCodeTableName(byte(n)))
		}
	}
	fmt.Fprintln(w, "\nInternational character sets (ESC R n):")
	for n := 0; n < 256; n++ {
		if _, ok := codepage.ICS(byte(n)); ok {
			fmt.Fprintf(w, "  %3d: %s\n", n, codepage.ICSName(byte(n)))
		}
	}
}

func newLogger(w io.Writer) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), zapcore.WarnLevel)
	return zap.New(core)
}

const fontPatternHelp = `Supported font size patterns (width x height):
SBCS
  Pattern  A        B        C        D        E        sp.A     sp.B
  1        12x24    10x24    8x16
  2        12x24    10x24    8x16                       24x48
  3        12x24    10x24    9x17
  4        12x24    8x16
  5        12x24    9x17
  6        12x24    9x24     9x17     10x24    8x16
  7        12x24    9x24     9x17     10x24    8x16     12x24    9x24
  8        12x24    9x24                                12x24    9x24
  9        9x9      7x9
CJK MBCS
  Pattern  A        B        C
  1        24x24    20x24    16x16
  2        24x24    20x24
  3        24x24    16x16
  4        24x24
  5        16x16
Line display
  1        8x16
  2        5x7
`

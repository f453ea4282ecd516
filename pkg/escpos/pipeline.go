// pkg/escpos/pipeline.go
package escpos

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNilBuffer is returned when Decode is called without a buffer.
var ErrNilBuffer = errors.New("escpos: nil input buffer")

// DefaultCodePage is the code page a stream starts in unless configured.
const DefaultCodePage = 850

// Config is the initial state of a decode.
type Config struct {
	Device   DeviceType
	CodePage int
	// ICS is the initial international character set (ESC R parameter).
	ICS   byte
	Kanji bool
	Fonts FontPatterns
}

// DefaultConfig decodes printer streams in code page 850.
func DefaultConfig() Config {
	return Config{
		Device:   DevicePrinter,
		CodePage: DefaultCodePage,
		Fonts:    DefaultFontPatterns,
	}
}

// Validate checks the configuration before it is used.
func (c Config) Validate() error {
	if c.Device != DevicePrinter && c.Device != DeviceLineDisplay {
		return fmt.Errorf("unknown device type %q", c.Device)
	}
	if c.CodePage < 0 {
		return fmt.Errorf("invalid code page %d", c.CodePage)
	}
	return c.Fonts.Validate()
}

// Result is the outcome of one decode.
type Result struct {
	Text    string
	Bitmaps []*Bitmap
	Records []*Record
	// Errors lists records whose parameters could not be described.
	Errors []*DecodeError
}

// Decoder runs the tokenize, decode and assemble passes over raw ESC/POS
// streams. A Decoder holds no per-stream state and may be shared.
type Decoder struct {
	cfg    Config
	logger *zap.Logger
}

// Option customizes a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for fallbacks and recovered decode errors.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Decoder. A zero Device or Fonts takes its default. CodePage is
// used as given: 0 is the embedded ASCII table, not DefaultCodePage.
func New(cfg Config, opts ...Option) (*Decoder, error) {
	def := DefaultConfig()
	if cfg.Device == "" {
		cfg.Device = def.Device
	}
	if cfg.Fonts == (FontPatterns{}) {
		cfg.Fonts = def.Fonts
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid decoder config: %w", err)
	}

	d := &Decoder{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Config returns the configuration the decoder was built with.
func (d *Decoder) Config() Config {
	return d.cfg
}

// Decode converts a raw stream into text and extracted bitmaps. Malformed
// input never fails; only a nil buffer does.
func (d *Decoder) Decode(raw []byte) (*Result, error) {
	if raw == nil {
		return nil, ErrNilBuffer
	}
	if len(raw) == 0 {
		return &Result{}, nil
	}

	records := Scan(raw, d.cfg.Device, d.cfg.Fonts)
	derrs := DecodeRecords(records)
	for _, derr := range derrs {
		d.logger.Warn("Failed to decode command parameters",
			zap.Int("index", derr.Index),
			zap.String("type", string(derr.Type)),
			zap.Any("cause", derr.Cause),
		)
	}

	a := newAssembler(d.cfg, d.logger)
	text, bitmaps := a.run(records)
	return &Result{Text: text, Bitmaps: bitmaps, Records: records, Errors: derrs}, nil
}

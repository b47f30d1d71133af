package buffer

// DefaultLineBreak is the marker used when none is configured.
const DefaultLineBreak = "\n"

// Option configures a Buffer.
type Option func(*Buffer)

// WithLineBreak sets the line-break marker used to split and join lines.
// Empty markers are ignored.
func WithLineBreak(marker string) Option {
	return func(b *Buffer) {
		if marker != "" {
			b.lineBreak = marker
		}
	}
}

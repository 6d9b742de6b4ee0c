//go:build tinygo

package fmtx

import "io"

// DefaultOutput is used by Print/Printf on MCU builds.
// Set this from your platform bootstrap (e.g. a UART writer).
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// --- Public API (signatures match fmt) ---

func Sprintf(format string, a ...any) string {
	var b builder
	b.format(format, a...)
	return string(b.buf)
}

func Printf(format string, a ...any) (int, error) {
	return Print(Sprintf(format, a...))
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return w.Write([]byte(Sprintf(format, a...)))
}

func Sprint(a ...any) string {
	var b builder
	for i, v := range a {
		if i > 0 {
			b.byte(' ')
		}
		b.any(v)
	}
	return string(b.buf)
}

func Print(a ...any) (int, error) {
	return DefaultOutput.Write([]byte(Sprint(a...)))
}

// --- Internals: tiny formatter subset ---
// Supports %s %q %d %x %v %t %%; no flags or widths. Keep MCU cost low.

type builder struct{ buf []byte }

func (b *builder) byte(c byte)  { b.buf = append(b.buf, c) }
func (b *builder) str(s string) { b.buf = append(b.buf, s...) }

func (b *builder) any(v any) {
	switch x := v.(type) {
	case string:
		b.str(x)
	case []byte:
		b.buf = append(b.buf, x...)
	case error:
		b.str(x.Error())
	case bool:
		b.bool(x)
	case int:
		b.int(int64(x))
	case int8:
		b.int(int64(x))
	case int16:
		b.int(int64(x))
	case int32:
		b.int(int64(x))
	case int64:
		b.int(x)
	case uint:
		b.uint(uint64(x), 10)
	case uint8:
		b.uint(uint64(x), 10)
	case uint16:
		b.uint(uint64(x), 10)
	case uint32:
		b.uint(uint64(x), 10)
	case uint64:
		b.uint(x, 10)
	default:
		b.str("<unk>")
	}
}

func (b *builder) bool(v bool) {
	if v {
		b.str("true")
	} else {
		b.str("false")
	}
}

func (b *builder) int(v int64) {
	if v < 0 {
		b.byte('-')
		v = -v
	}
	b.uint(uint64(v), 10)
}

const digits = "0123456789abcdef"

func (b *builder) uint(v uint64, base uint64) {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = digits[v%base]
		v /= base
		if v == 0 {
			break
		}
	}
	b.buf = append(b.buf, tmp[i:]...)
}

func (b *builder) format(format string, args ...any) {
	ai := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			b.byte(format[i])
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.byte('%')
			i += 2
			continue
		}
		i++
		if i >= len(format) || ai >= len(args) {
			return
		}
		verb := format[i]
		arg := args[ai]
		ai++
		i++

		switch verb {
		case 's', 'v':
			b.any(arg)
		case 'q':
			b.byte('"')
			b.any(arg)
			b.byte('"')
		case 'd':
			b.any(arg)
		case 'x':
			switch x := arg.(type) {
			case int:
				b.uint(uint64(x), 16)
			case uint8:
				b.uint(uint64(x), 16)
			case uint16:
				b.uint(uint64(x), 16)
			case uint32:
				b.uint(uint64(x), 16)
			case uint64:
				b.uint(x, 16)
			default:
				b.any(arg)
			}
		case 't':
			v, _ := arg.(bool)
			b.bool(v)
		default:
			// Unknown verb: write it literally to aid debugging.
			b.byte('%')
			b.byte(verb)
		}
	}
}

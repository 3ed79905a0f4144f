/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package nlog

import (
	"fmt"
	"log"
	"os"
)

// Logger is something that can print, using Logf, a format string
type Logger interface {
	Logf(format string, v ...any)
}

// subsystemLogger tags every line with the name of the component that emitted it
type subsystemLogger struct {
	out *log.Logger
}

func (s *subsystemLogger) Logf(format string, v ...any) {
	s.out.Printf(format, v...)
}

// New returns a Logger that writes to stdout, prefixing each line with the subsystem name
func New(subsystem string) Logger {
	return &subsystemLogger{
		out: log.New(os.Stdout, fmt.Sprintf("[%s]: ", subsystem), log.Ldate|log.Ltime),
	}
}

// nopLogger discards everything, used by tests
type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Nop returns a Logger that drops every line
func Nop() Logger {
	return nopLogger{}
}

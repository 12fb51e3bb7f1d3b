// seehuhn.de/go/primewalk - draw walks along the prime numbers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logger configures the logrus loggers used throughout primewalk.
package logger

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Formatter writes one line per entry: time, level, message and the
// entry's fields in key order.
type Formatter struct {
	TimestampFormat string
	DisableColors   bool
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var levelColor *color.Color
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		levelColor = color.New(color.FgRed, color.Bold)
	case logrus.WarnLevel:
		levelColor = color.New(color.FgYellow, color.Bold)
	case logrus.InfoLevel:
		levelColor = color.New(color.FgCyan)
	default:
		levelColor = color.New(color.FgWhite, color.Faint)
	}
	levelText := strings.ToUpper(entry.Level.String())

	b := &strings.Builder{}
	if f.TimestampFormat != "" {
		fmt.Fprintf(b, "[%s] ", entry.Time.Format(f.TimestampFormat))
	}
	if f.DisableColors {
		b.WriteString(levelText)
	} else {
		b.WriteString(levelColor.Sprint(levelText))
	}
	b.WriteString(": ")
	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		fields := &strings.Builder{}
		fields.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				fields.WriteString(", ")
			}
			fmt.Fprintf(fields, "%s=%v", k, entry.Data[k])
		}
		fields.WriteString("}")

		if f.DisableColors {
			b.WriteString(fields.String())
		} else {
			b.WriteString(color.New(color.FgWhite, color.Faint).Sprint(fields.String()))
		}
	}
	b.WriteByte('\n')

	return []byte(b.String()), nil
}

// New returns a logger writing to w at the given level
// ("debug", "info", "warn" or "error").
func New(w io.Writer, level string, colors bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&Formatter{
		TimestampFormat: "15:04:05",
		DisableColors:   !colors,
	})
	return log, nil
}

// Discard returns a logger which drops all messages.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

// OrDiscard returns l, or a discarding logger if l is nil.
func OrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return Discard()
	}
	return l
}

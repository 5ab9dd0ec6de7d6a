// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/openledger/tokencore/pkg/errors"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	zl zerolog.Logger
}

var _ Logger = ZerologLogger{}

// NewLogger builds a zerolog-backed logger. Format is "plain" (console) or
// "json"; level is a zerolog level name.
func NewLogger(format, level string) (ZerologLogger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return ZerologLogger{}, errors.BadRequest.WithFormat("log level %q is not supported: %w", level, err)
	}

	var w io.Writer
	switch format {
	case "", "text", "plain":
		// Use zerolog's console writer to write pretty logs
		w = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i interface{}) string {
				if ll, ok := i.(string); ok {
					return strings.ToUpper(ll)
				}
				return "????"
			},
		}
	case "json":
		w = os.Stderr
	default:
		return ZerologLogger{}, errors.BadRequest.WithFormat("log format %q is not supported", format)
	}

	return ZerologLogger{zerolog.New(w).Level(lvl).With().Timestamp().Logger()}, nil
}

func (l ZerologLogger) Debug(msg string, keyVals ...interface{}) {
	l.send(l.zl.Debug(), msg, keyVals)
}

func (l ZerologLogger) Info(msg string, keyVals ...interface{}) {
	l.send(l.zl.Info(), msg, keyVals)
}

func (l ZerologLogger) Error(msg string, keyVals ...interface{}) {
	l.send(l.zl.Error(), msg, keyVals)
}

func (l ZerologLogger) send(e *zerolog.Event, msg string, keyVals []interface{}) {
	for i := 0; i+1 < len(keyVals); i += 2 {
		e = e.Interface(fmt.Sprint(keyVals[i]), keyVals[i+1])
	}
	e.Msg(msg)
}

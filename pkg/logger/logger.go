package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var base = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the package logger for an environment. Anything other than
// "production" gets human-readable console output at debug level.
func Init(env string) {
	InitWithWriter(env, os.Stdout)
}

// InitWithWriter is Init with a custom destination, e.g. stderr for the CLI.
func InitWithWriter(env string, out io.Writer) {
	if env == "production" {
		configure(out, zerolog.InfoLevel)
		return
	}
	configure(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}, zerolog.DebugLevel)
}

func configure(w io.Writer, level zerolog.Level) {
	base = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func Debug(msg string, kv ...any) {
	write(base.Debug(), msg, kv)
}

func Info(msg string, kv ...any) {
	write(base.Info(), msg, kv)
}

func Warn(msg string, kv ...any) {
	write(base.Warn(), msg, kv)
}

func Error(msg string, kv ...any) {
	write(base.Error(), msg, kv)
}

// Fatal logs and exits the process.
func Fatal(msg string, kv ...any) {
	write(base.Fatal(), msg, kv)
}

// write accepts key/value pairs. A trailing lone error is logged under "error".
func write(ev *zerolog.Event, msg string, kv []any) {
	for i := 0; i < len(kv); i += 2 {
		if i+1 == len(kv) {
			if err, ok := kv[i].(error); ok {
				ev = ev.Err(err)
			} else {
				ev = ev.Interface("extra", kv[i])
			}
			break
		}

		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}

		if err, ok := kv[i+1].(error); ok {
			ev = ev.AnErr(key, err)
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}

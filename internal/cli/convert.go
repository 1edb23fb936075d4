package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucrnz/ms"
	"github.com/lucrnz/ms/internal/logging"
	"github.com/lucrnz/ms/internal/util"
)

// record is one converted value. Both representations are always filled so
// JSON consumers need not care which direction ran.
type record struct {
	Input string `json:"input"`
	MS    int64  `json:"ms"`
	Text  string `json:"text"`
}

// writer renders records in the format selected by the flags.
type writer struct {
	out  io.Writer
	enc  *json.Encoder
	opts *options
}

func newWriter(out io.Writer, opts *options) *writer {
	w := &writer{out: out, opts: opts}
	if opts.jsonOut {
		w.enc = json.NewEncoder(out)
	}
	return w
}

// millis renders a millisecond count according to --comma and --compact.
func (w *writer) millis(n int64) string {
	switch {
	case w.opts.comma:
		return util.GroupDigits(n)
	case w.opts.compact:
		return util.Compact(n)
	default:
		return strconv.FormatInt(n, 10)
	}
}

func (w *writer) write(rec record, out ms.Output) error {
	if w.enc != nil {
		return w.enc.Encode(rec)
	}
	line := rec.Text
	if out.Kind() == ms.KindMilliseconds {
		line = w.millis(rec.MS)
	}
	_, err := fmt.Fprintln(w.out, line)
	return err
}

// convertOne dispatches a single value and writes the result.
func convertOne(ctx context.Context, w *writer, opts *options, value string) error {
	logger := logging.FromContext(ctx)

	out, err := dispatch(opts, value)
	if err != nil {
		logger.Warn("duration_rejected", "input", value, "error", err)
		return err
	}

	rec := record{Input: value}
	if n, ok := out.Milliseconds(); ok {
		rec.MS = n
		rec.Text = ms.Format(n)
		logger.Debug("duration_parsed", "input", value, "ms", n)
	} else {
		rec.Text = out.MustString()
		rec.MS, _ = strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		logger.Debug("duration_formatted", "ms", rec.MS, "text", rec.Text)
	}
	return w.write(rec, out)
}

func dispatch(opts *options, value string) (ms.Output, error) {
	if opts.forceParse {
		return ms.MS(value)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err == nil {
		return ms.MS(n)
	}
	if opts.forceFormat {
		return ms.Output{}, fmt.Errorf("--format expects an integer millisecond count, got %q", value)
	}
	return ms.MS(value)
}

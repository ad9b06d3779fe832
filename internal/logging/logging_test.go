package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name      string
		logger    Logger
		wantInfo  bool
		wantDebug bool
		wantWarn  bool
		wantError bool
	}{
		{"quiet", Logger{}, false, false, false, false},
		{"verbose", Logger{Verbose: true}, true, false, true, false},
		{"debug", Logger{Debug: true}, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			l := tt.logger
			l.Out, l.Err = &out, &errOut

			l.Infof("info %d", 1)
			l.Debugf("debug %d", 2)
			l.Warnf("warn %d", 3)
			l.Errorf("error %d", 4)
			l.WarnfAlways("always %d", 5)

			check := func(buf *bytes.Buffer, text string, want bool) {
				if got := strings.Contains(buf.String(), text); got != want {
					t.Errorf("%q present = %v, want %v (output %q)", text, got, want, buf.String())
				}
			}
			check(&out, "[info] info 1", tt.wantInfo)
			check(&out, "[debug] debug 2", tt.wantDebug)
			check(&errOut, "[warn] warn 3", tt.wantWarn)
			check(&errOut, "[error] error 4", tt.wantError)
			check(&errOut, "[warn] always 5", true)
		})
	}
}

func TestErrorfAndReturn(t *testing.T) {
	var errOut bytes.Buffer
	l := Logger{Err: &errOut}

	err := l.ErrorfAndReturn("failed to load key %s", "k1")
	if err == nil || err.Error() != "failed to load key k1" {
		t.Fatalf("unexpected error: %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("expected no output without --debug, got %q", errOut.String())
	}
}

package framework

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used throughout the framework. *log.Logger and
// *logrus.Logger both satisfy it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger keeps the debug output of one test so it can be shown along with the result. Each
// message is also passed on to the suite's debug logger, prefixed with the test ID.
type CapturingLogger struct {
	clock   clock.Clock
	forward Logger
	prefix  string
	output  []CapturedMessage
	lock    sync.Mutex
}

func newCapturingLogger(clk clock.Clock, forward Logger, testID int) *CapturingLogger {
	return &CapturingLogger{
		clock:   clk,
		forward: forward,
		prefix:  fmt.Sprintf("[#%d] ", testID),
	}
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	text := fmt.Sprintf(message, args...)
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: l.clock.Now(), Message: text})
	l.lock.Unlock()
	if l.forward != nil {
		l.forward.Printf("%s%s", l.prefix, text)
	}
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Message,
		)
	}
}

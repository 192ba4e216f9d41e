package logrus

import (
	"github.com/dbor-go/dbor"
	"github.com/sirupsen/logrus"
)

// Logger adapts dbor.Logger onto github.com/sirupsen/logrus.
type Logger struct{ E *logrus.Entry }

var _ dbor.Logger = Logger{}

func (l Logger) Debug(msg string, f dbor.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f dbor.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f dbor.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f dbor.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}

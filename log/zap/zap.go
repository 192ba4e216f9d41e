package zap

import (
	"github.com/dbor-go/dbor"
	"go.uber.org/zap"
)

// Logger adapts dbor.Logger onto go.uber.org/zap.
type Logger struct{ L *zap.Logger }

var _ dbor.Logger = Logger{}

func (z Logger) Debug(msg string, f dbor.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f dbor.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f dbor.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f dbor.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f dbor.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}

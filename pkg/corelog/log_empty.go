//go:build logless

package corelog

// Log is a no-op logger with the same call shape as the zerolog-backed
// logger, for builds that cannot afford the dependency or the output.
var Log = EmptyLog{}

type EmptyLog struct{}

func (l EmptyLog) Debug() EmptyLog { return l }
func (l EmptyLog) Warn() EmptyLog  { return l }
func (l EmptyLog) Error() EmptyLog { return l }

func (l EmptyLog) Msg(string)          {}
func (l EmptyLog) Err(error) EmptyLog  { return l }
func (l EmptyLog) Int(string, int) EmptyLog         { return l }
func (l EmptyLog) Float64(string, float64) EmptyLog { return l }
func (l EmptyLog) Str(string, string) EmptyLog      { return l }

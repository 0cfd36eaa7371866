package shared

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_logger.go -package mocks masto_graph/shared ILogger

// ILogger is the logging surface the rest of the code sees.
// Satisfied by *github.com/charmbracelet/log.Logger; main.go builds that one.
type ILogger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Debugf(format string, args ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Infof(format string, args ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Warnf(format string, args ...interface{})
	Error(msg interface{}, keyvals ...interface{})
	Errorf(format string, args ...interface{})
	Print(msg interface{}, keyvals ...interface{})
	Printf(format string, args ...interface{})
}

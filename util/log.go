package util
import (
	"os"
	"sync"
	"time"
)

/*
 * a small leveled logger for the command line shell.
 * the codec itself never logs, all failures are returned to the caller.
 */
const (
	Error = 1
	Warning = 2
	Info = 4

	RedColor = "\033[31m"
	YellowColor = "\033[33m"
	CyanColor = "\033[36m"
	ResetColor = "\033[0m"
)

type LoggerInfo struct {
	Filename	string	`yaml:"filename"`	// empty means stderr only
	IsColored	bool	`yaml:"is_colored"`
	SaveTime	bool	`yaml:"save_time"`
	Mode		uint8	`yaml:"mode"`
}

type Logger struct {
	li	*LoggerInfo
	mtx	sync.Mutex
}

func NewLogger( li *LoggerInfo ) *Logger {
	return &Logger{
		li,
		sync.Mutex{},
	}
}

func(l *Logger) colorize( line string, color string ) string {
	if l.li.IsColored {
		return color + line + ResetColor
	}
	return line
}

func(l *Logger) prepareString( str string, clr string ) string {
	toWrite := l.colorize( str, clr ) + " "
	if l.li.SaveTime {
		toWrite += time.Now().String() + " "
	}
	return toWrite
}

func(l *Logger) LogString( s string ) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.li.Filename != "" {
		f, err := os.OpenFile( l.li.Filename, os.O_APPEND | os.O_CREATE | os.O_WRONLY, 0600 )
		if err == nil {
			defer f.Close()
			f.WriteString( s + "\n" )
			return
		}
		// log file is not writable, fall back to stderr
	}
	os.Stderr.WriteString( s + "\n" )
}

func(l *Logger) LogError( err error ) {
	if l.li.Mode & Error == Error {
		toWrite := l.prepareString( "[ERROR]", RedColor ) + err.Error()
		l.LogString( toWrite )
	}
}

func(l *Logger) LogWarning( warning string ) {
	if l.li.Mode & Warning == Warning {
		toWrite := l.prepareString( "[WARNING]", YellowColor ) + warning
		l.LogString( toWrite )
	}
}

func(l *Logger) LogInfo( info string ) {
	if l.li.Mode & Info == Info {
		toWrite := l.prepareString( "[INFO]", CyanColor ) + info
		l.LogString( toWrite )
	}
}

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New はレベル付きのJSONロガーを作る。wがnilなら標準出力。
// 不明なレベルはinfo扱い。
func New(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "oroshop").Logger()
}

// 開発用：人が読みやすい形式
func NewConsole(level string) zerolog.Logger {
	return New(level, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}

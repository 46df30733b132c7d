package bot

import (
	"context"
	"fmt"
	"mangatrade/pkg/logger"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func discordLevel(msgL int) zapcore.Level {
	switch msgL {
	case discordgo.LogError:
		return zapcore.ErrorLevel
	case discordgo.LogWarning:
		return zapcore.WarnLevel
	case discordgo.LogInformational:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// discordLogger routes discordgo's internal logging to zap.
func discordLogger(msgL, _ int, format string, a ...any) {
	l := logger.Get(context.Background()).WithOptions(zap.AddCallerSkip(2)) //nolint: mnd
	if ce := l.Check(discordLevel(msgL), fmt.Sprintf(format, a...)); ce != nil {
		ce.Write(zap.String("component", "discordgo"))
	}
}

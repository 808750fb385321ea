/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// DefaultLogger is a global logger configured at InfoLevel to os.Stdout.
	DefaultLogger = NewZap(InfoLevel, os.Stdout)
	// DebugLogger is a global logger configured at DebugLevel to os.Stdout.
	DebugLogger = NewZap(DebugLevel, os.Stdout)
)

// Zap implements Logger using go.uber.org/zap as the backing library.
type Zap struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
	level  Level
}

var _ Logger = (*Zap)(nil)

// NewZap creates a Zap logger writing to writers at the given level.
func NewZap(level Level, writers ...io.Writer) *Zap {
	syncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		syncers = append(syncers, zapcore.AddSync(w))
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(syncers...),
		toZapLevel(level),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return &Zap{
		logger: logger,
		sugar:  logger.Sugar(),
		level:  level,
	}
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel + 1 // above any real level: effectively disabled
	}
}

func (z *Zap) Debug(v ...any)                  { z.sugar.Debug(v...) }
func (z *Zap) Debugf(format string, v ...any)  { z.sugar.Debugf(format, v...) }
func (z *Zap) Info(v ...any)                   { z.sugar.Info(v...) }
func (z *Zap) Infof(format string, v ...any)   { z.sugar.Infof(format, v...) }
func (z *Zap) Warn(v ...any)                   { z.sugar.Warn(v...) }
func (z *Zap) Warnf(format string, v ...any)   { z.sugar.Warnf(format, v...) }
func (z *Zap) Error(v ...any)                  { z.sugar.Error(v...) }
func (z *Zap) Errorf(format string, v ...any)  { z.sugar.Errorf(format, v...) }
func (z *Zap) LogLevel() Level                 { return z.level }

// Sync flushes any buffered log entries. Call during graceful shutdown.
func (z *Zap) Sync() error {
	return z.logger.Sync()
}

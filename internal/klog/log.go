// Copyright 2026 The xv6sched Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package klog is a thin leveled-logging wrapper around logrus, in the
// spirit of gVisor's pkg/log: every kernel subsystem gets a named logger
// instead of reaching for the global log package directly, and fields are
// attached structurally rather than interpolated into the message.
package klog

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	baseOnce sync.Once
	base     *logrus.Logger
)

func baseLogger() *logrus.Logger {
	baseOnce.Do(func() {
		base = logrus.New()
		base.SetOutput(os.Stderr)
		base.SetLevel(logrus.InfoLevel)
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	})
	return base
}

// SetLevel adjusts the package-wide log level (e.g. from a -debug flag).
func SetLevel(level logrus.Level) {
	baseLogger().SetLevel(level)
}

// Logger is a named, structured logger for one kernel subsystem.
type Logger struct {
	entry *logrus.Entry
}

// New returns a Logger tagged with the given subsystem name.
func New(subsystem string) *Logger {
	return &Logger{entry: baseLogger().WithField("subsystem", subsystem)}
}

// With returns a derived Logger with additional structured fields attached,
// e.g. l.With("pid", p.pid).Infof("fork").
func (l *Logger) With(kv ...any) *Logger {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			fields[key] = kv[i+1]
		}
	}
	return &Logger{entry: l.entry.WithFields(fields)}
}

func (l *Logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

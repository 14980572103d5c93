// Copyright 2026 The tiling Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tiling

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandlerDisabled(t *testing.T) {
	h := nopHandler{}
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), lvl) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", lvl)
		}
	}
	if got := h.WithAttrs([]slog.Attr{slog.Int("n", 1)}); got != (nopHandler{}) {
		t.Errorf("WithAttrs = %v, want nopHandler", got)
	}
	if got := h.WithGroup("g"); got != (nopHandler{}) {
		t.Errorf("WithGroup = %v, want nopHandler", got)
	}
}

func TestDefaultLoggerSilent(t *testing.T) {
	if logger() == nil {
		t.Fatal("logger() = nil")
	}
	if logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled, want silent")
	}
}

func TestSetLoggerCapturesDebug(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	m := New(1024, 768, 128)
	if _, err := m.Add(mustShape(t, 6)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !strings.Contains(buf.String(), "inserted shape") {
		t.Errorf("debug output missing insertion record:\n%s", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	if _, err := m.AddMulti(Range{Start: 0, End: 1}, Range{Start: 0, End: 6}, mustShape(t, 4)); err != nil {
		t.Fatalf("AddMulti failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote output:\n%s", buf.String())
	}
}

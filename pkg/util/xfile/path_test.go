package xfile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"简单文件名", "app_42.log", "app_42.log", nil},
		{"相对子目录", "logs/app_42.log", filepath.Join("logs", "app_42.log"), nil},
		{"冗余斜杠和点", "./logs//./app.log", filepath.Join("logs", "app.log"), nil},
		{"绝对路径", "/var/log/app.log", "/var/log/app.log", nil},
		{"绝对路径内的 ..", "/var/log/../tmp/app.log", "/var/tmp/app.log", nil},
		{"双点文件名合法", "app..2024.log", "app..2024.log", nil},
		{"空路径", "", "", ErrEmptyPath},
		{"空字节", "app\x00.log", "", ErrNullByte},
		{"目录路径", "logs/", "", ErrInvalidPath},
		{"反斜杠目录路径", "logs\\", "", ErrInvalidPath},
		{"相对路径穿越", "../etc/app.log", "", ErrPathTraversal},
		{"当前目录", ".", "", ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePath(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasDotDotSegment(t *testing.T) {
	assert.True(t, hasDotDotSegment(".."))
	assert.True(t, hasDotDotSegment("a/../b"))
	assert.True(t, hasDotDotSegment(`a\..\b`))
	assert.False(t, hasDotDotSegment("..config"))
	assert.False(t, hasDotDotSegment("a/...b"))
	assert.False(t, hasDotDotSegment(""))
}

func FuzzSanitizePath(f *testing.F) {
	f.Add("app.log")
	f.Add("../app.log")
	f.Add("/var/log/app.log")
	f.Add("logs/")
	f.Add("a\x00b")
	f.Add("日志/应用.log")

	f.Fuzz(func(t *testing.T, input string) {
		got, err := SanitizePath(input)
		if err != nil {
			return
		}
		if hasDotDotSegment(got) {
			t.Errorf("SanitizePath(%q) = %q contains '..' segment", input, got)
		}
		if containsNullByte(got) {
			t.Errorf("SanitizePath(%q) = %q contains null byte", input, got)
		}
	})
}

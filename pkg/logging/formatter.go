package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// BulletFormatter formats log entries in goreleaser-style bullets:
// info-level entries are prefixed with "  * ", warnings with "  ! ",
// and errors with "  x ". Key-value fields are appended as sorted
// key=value pairs.
type BulletFormatter struct{}

func (f *BulletFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		fmt.Fprintf(&buf, "  x %s", entry.Message)
	case logrus.WarnLevel:
		fmt.Fprintf(&buf, "  ! %s", entry.Message)
	case logrus.InfoLevel:
		fmt.Fprintf(&buf, "  * %s", entry.Message)
	default:
		// Debug level normally uses logrus.TextFormatter; handle gracefully
		fmt.Fprintf(&buf, "    %s", entry.Message)
	}

	if kvs := formatFields(entry.Data); kvs != "" {
		buf.WriteString(kvs)
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// formatFields renders entry fields as sorted key=value pairs for
// deterministic output.
func formatFields(fields logrus.Fields) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}

	return "  " + strings.Join(parts, " ")
}

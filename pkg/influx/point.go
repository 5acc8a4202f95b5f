package influx

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Field is one named numeric value of a point. Integer fields are written
// with the line-protocol "i" suffix so the endpoint keeps their type.
type Field struct {
	Key     string
	Value   float64
	Integer bool
}

// Point is one timestamped write. Points are immutable once written; the
// access layer always stamps them with the current wall clock at submit.
type Point struct {
	Measurement string
	Fields      []Field
	Timestamp   time.Time
}

// LineProtocol encodes the point as one line-protocol record with
// nanosecond precision.
func (p Point) LineProtocol() string {
	fields := make([]Field, len(p.Fields))
	copy(fields, p.Fields)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })

	var b strings.Builder
	b.WriteString(escapeKey(p.Measurement))
	b.WriteByte(' ')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeKey(f.Key))
		b.WriteByte('=')
		if f.Integer {
			b.WriteString(strconv.FormatInt(int64(f.Value), 10))
			b.WriteByte('i')
		} else {
			b.WriteString(strconv.FormatFloat(f.Value, 'f', -1, 64))
		}
	}
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(p.Timestamp.UnixNano(), 10))
	return b.String()
}

func escapeKey(s string) string {
	replacer := strings.NewReplacer(",", `\,`, " ", `\ `, "=", `\=`)
	return replacer.Replace(s)
}

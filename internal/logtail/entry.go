package logtail

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Keys written by the pitch logger.
const (
	keyTime      = "timestamp"
	keyLevel     = "level"
	keyMessage   = "message"
	keyComponent = "component"
	keyCaller    = "caller"
)

// Entry is one parsed log line.
type Entry struct {
	Time      time.Time
	Level     string
	Component string
	Message   string
	Fields    map[string]string
	Raw       string
}

// Parse decodes a JSON log line. Lines that are not JSON objects come back
// with only Raw and Message set.
func Parse(line string) Entry {
	e := Entry{Raw: line}

	var obj map[string]any
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		e.Message = line
		return e
	}

	if ts, ok := obj[keyTime].(string); ok {
		if t, err := time.Parse("2006-01-02T15:04:05.000Z0700", ts); err == nil {
			e.Time = t
		} else if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			e.Time = t
		}
	}
	e.Level, _ = obj[keyLevel].(string)
	e.Message, _ = obj[keyMessage].(string)
	e.Component, _ = obj[keyComponent].(string)

	for k, v := range obj {
		switch k {
		case keyTime, keyLevel, keyMessage, keyComponent, keyCaller:
			continue
		}
		if e.Fields == nil {
			e.Fields = make(map[string]string)
		}
		e.Fields[k] = fmt.Sprint(v)
	}
	return e
}

// String formats the entry for a terminal:
//
//	15:04:05 WARN  [assets] image load failed path=a.png
func (e Entry) String() string {
	if e.Level == "" && e.Time.IsZero() {
		return e.Raw
	}

	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%-5s ", e.Level)
	if e.Component != "" {
		b.WriteString("[" + e.Component + "] ")
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + "=" + e.Fields[k])
	}
	return b.String()
}

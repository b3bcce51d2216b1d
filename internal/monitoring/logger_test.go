package monitoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var lines []string
	SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	Logf("traffic: %d slots", 30)
	assert.Equal(t, []string{"traffic: 30 slots"}, lines)

	SetLogger(nil)
	assert.NotPanics(t, func() { Logf("muted %s", "line") })
	assert.Len(t, lines, 1, "nil logger must not reach the previous sink")
}

func TestLogfDefault(t *testing.T) {
	assert.NotNil(t, Logf)
}

package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsPrefix(t *testing.T) {
	assert.Equal(t, "obra_offline", metricsPrefix("obra-offline"))
	assert.Equal(t, "obra_offline", metricsPrefix(""))
	assert.Equal(t, "app_v2", metricsPrefix("app v2"))
}

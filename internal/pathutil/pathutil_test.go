package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("BREATHE_ENV", "test")

	p := &Paths{
		appDir:         "breathe",
		configFileName: "config.yml",
		dbFileName:     "breathe.db",
		statusFileName: "status.json",
		logFileName:    "breathe.log",
	}

	p.applyEnvironmentOverrides()

	assert.Equal(t, "config_test.yml", p.configFileName)
	assert.Equal(t, "breathe_test.db", p.dbFileName)
	assert.Equal(t, "status_test.json", p.statusFileName)
	assert.Equal(t, "breathe_test.log", p.logFileName)
}

package common_test

import (
	"testing"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/hamlet"
)

func TestLogLevelPrefersProductVariable(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	t.Setenv(common.GENERIC_LOG_LEVEL_VARIABLE, "debug")
	t.Setenv(common.GEMDECK_LOG_LEVEL_VARIABLE, "TRACE ")
	must.Equal("trace", common.LogLevel())

	t.Setenv(common.GEMDECK_LOG_LEVEL_VARIABLE, "")
	must.Equal("debug", common.LogLevel())
}

func TestVerbosityFlagsInteract(t *testing.T) {
	must, _ := hamlet.Specifications(t)
	defer common.DefineVerbosity(false, false, false)

	common.DefineVerbosity(false, false, true)
	must.True(common.TraceFlag())
	must.True(common.DebugFlag())
	must.True(!common.Silent())

	common.DefineVerbosity(true, false, false)
	must.True(common.Silent())
	must.True(!common.DebugFlag())

	// silence loses against explicit debug
	common.DefineVerbosity(true, true, false)
	must.True(!common.Silent())
	must.True(common.DebugFlag())
	must.True(!common.TraceFlag())
}

func TestProductStrategyHome(t *testing.T) {
	must, _ := hamlet.Specifications(t)
	defer common.Product.ForceHome("")

	where := t.TempDir()
	common.Product.ForceHome(where)
	must.Equal(where, common.Product.Home())
	must.Equal("gemdeck", common.Product.Name())
	must.True(len(common.Product.SettingsYamlFile()) > len(where))
}

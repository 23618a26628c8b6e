package xviper

import (
	"sync"

	"github.com/gemdeck/gemdeck/common"
	"github.com/spf13/viper"
)

var (
	mutex     sync.Mutex
	state     *viper.Viper
	statefile string
)

// instance lazily binds viper to the product state file. The binding is
// re-evaluated when the resolved state file changes (tests ForceHome).
func instance() *viper.Viper {
	current := common.Product.StateFile()
	if state == nil || statefile != current {
		statefile = current
		state = viper.New()
		state.SetConfigFile(statefile)
		state.SetConfigType("yaml")
		if err := state.ReadInConfig(); err != nil {
			common.Trace("state file %q not readable: %v", statefile, err)
		}
	}
	return state
}

func Set(key string, value interface{}) {
	mutex.Lock()
	defer mutex.Unlock()
	it := instance()
	it.Set(key, value)
	if err := it.WriteConfigAs(statefile); err != nil {
		common.Error("state write", err)
	}
}

func GetString(key string) string {
	mutex.Lock()
	defer mutex.Unlock()
	return instance().GetString(key)
}

func GetInt64(key string) int64 {
	mutex.Lock()
	defer mutex.Unlock()
	return instance().GetInt64(key)
}

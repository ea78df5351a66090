package vec

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/xernobyl/oglmath/src/mode"
)

// view is the flat array handed out by ToArray. It is built once and then
// shared with every caller, who may write into it.
type view struct {
	once sync.Once
	data []float32
}

// slice returns the cached array for comps, building it on first use. In
// debug mode a warning is logged when every slot has drifted from its
// component. The array is never rebuilt.
func (v *view) slice(name string, comps []float32) []float32 {
	if v == nil {
		return append([]float32(nil), comps...)
	}

	built := false
	v.once.Do(func() {
		v.data = make([]float32, len(comps))
		copy(v.data, comps)
		built = true
	})

	if !built && mode.IsDebug() && drifted(v.data, comps) {
		log.Warn().
			Str("vector", name).
			Floats32("array", v.data).
			Floats32("components", comps).
			Msg("array values have been altered and do not represent the vector components")
	}

	return v.data
}

// drifted is true only if all slots differ.
func drifted(data, comps []float32) bool {
	for i := range comps {
		if data[i] == comps[i] {
			return false
		}
	}
	return true
}

//go:build keyedlru_debug

package keyedlru

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}

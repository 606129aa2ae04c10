//go:build !keyedlru_debug

package keyedlru

const debugging = false

func assert(bool, string) {}

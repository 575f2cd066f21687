//go:build mddebug

package termstyle

const strictPop = true

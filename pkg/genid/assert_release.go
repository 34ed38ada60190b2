//go:build !genid_debug

package genid

const debugAssertions = false

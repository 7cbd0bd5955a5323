//go:build !go1.22

package provider

import "go/types"

// types.Unalias was added in Go 1.22; earlier go/types never
// materializes alias types, so unaliasing is the identity there.
func unalias(t types.Type) types.Type { return t }

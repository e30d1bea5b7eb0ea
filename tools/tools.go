//go:build tools

// Pins code generators used by `make proto` so their versions come from go.mod.
package tools

import (
	_ "google.golang.org/grpc/cmd/protoc-gen-go-grpc"
)

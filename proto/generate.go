// Package toolsv1 holds the ToolProvider gRPC contract. Run go generate
// after editing toolprovider.proto; the generated stubs are imported as
// toolsv1 by the grpc tool adapter.
package toolsv1

//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. toolprovider.proto

// Package chat holds the protobuf wire types and gRPC service definition of
// the chat service.
package chat

//go:generate protoc -I ../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative api/v1/chat/chat.proto

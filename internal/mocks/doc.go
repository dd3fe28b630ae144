// Package mocks contains minimock test doubles for the interfaces of this module.
package mocks

//go:generate go tool minimock -i github.com/tarantool/go-ni/hasher.Hasher -o hasher_mock.go -n HasherMock -p mocks
//go:generate go tool minimock -i hash.Hash -o hash_mock.go -n HashMock -p mocks

// Package utils provides small helpers shared by the bridge commands and
// workers: content hashing of watched files and item id generation.
package utils

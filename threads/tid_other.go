//go:build !linux
// +build !linux

package threads

func gettid() int {
	return 0
}

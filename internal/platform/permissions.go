package platform

import (
	"os"
	"runtime"
)

// Chmod sets file permissions. Windows has no Unix permission bits, so
// there it does nothing.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// CopyMode gives dst the permission bits of src.
func CopyMode(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return Chmod(dst, info.Mode().Perm())
}

package utils

import (
	"crypto/sha1"
	"fmt"
)

// ETag computes a weak entity tag over a serialized response body.
func ETag(data []byte) string {
	return fmt.Sprintf(`W/"%x"`, sha1.Sum(data))
}

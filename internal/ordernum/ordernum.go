// Package ordernum は人間が読める注文番号を生成する。
package ordernum

import (
	"crypto/rand"
	"fmt"
)

const (
	prefix   = "ORD-"
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffix   = 8
)

// Generatorは注文番号を1つ返す。テストでは固定値に差し替える。
type Generator func() (string, error)

// NewはORD- + 英大文字数字8桁を返す。
func New() (string, error) {
	b := make([]byte, suffix)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("ordernum: %w", err)
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return prefix + string(b), nil
}

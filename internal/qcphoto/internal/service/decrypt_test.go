// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encryptImageURL 按上游的加密方式构造密文，只在测试里用
func encryptImageURL(t *testing.T, plaintext, secret string) string {
	t.Helper()
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	require.NoError(t, err)
	iv := make([]byte, aes.BlockSize)
	_, err = rand.Read(iv)
	require.NoError(t, err)

	padding := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := []byte(plaintext)
	for i := 0; i < padding; i++ {
		padded = append(padded, byte(padding))
	}
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return base64.StdEncoding.EncodeToString(append(iv, ciphertext...))
}

func TestDecryptImageURL(t *testing.T) {
	t.Parallel()
	const secret = "test-url-key"
	testCases := []struct {
		name      string
		plaintext string
	}{
		{
			name:      "普通地址",
			plaintext: "https://img.example.com/qc/123.jpg",
		},
		{
			name:      "长度正好一个块",
			plaintext: "0123456789abcdef",
		},
		{
			name:      "带查询参数",
			plaintext: "https://img.example.com/qc/9.jpg?size=large&v=2",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encrypted := encryptImageURL(t, tc.plaintext, secret)
			decrypted, err := decryptImageURL(encrypted, secret)
			require.NoError(t, err)
			assert.Equal(t, tc.plaintext, decrypted)
		})
	}
}

func TestDecryptImageURL_BadInput(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		encrypted string
	}{
		{
			name:      "不是 base64",
			encrypted: "!!!not-base64!!!",
		},
		{
			name:      "比一个 IV 还短",
			encrypted: base64.StdEncoding.EncodeToString([]byte("short")),
		},
		{
			name:      "只有 IV 没有正文",
			encrypted: base64.StdEncoding.EncodeToString(make([]byte, 16)),
		},
		{
			name:      "正文不是块长的整数倍",
			encrypted: base64.StdEncoding.EncodeToString(make([]byte, 16+7)),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decryptImageURL(tc.encrypted, "key")
			assert.Error(t, err)
		})
	}
}

func TestDecryptImageURL_WrongKey(t *testing.T) {
	t.Parallel()
	encrypted := encryptImageURL(t, "https://img.example.com/qc/1.jpg", "right-key")
	decrypted, err := decryptImageURL(encrypted, "wrong-key")
	if err == nil {
		// 错误密钥偶尔也能凑出合法填充，但绝不会还原出原文
		assert.NotEqual(t, "https://img.example.com/qc/1.jpg", decrypted)
	}
}

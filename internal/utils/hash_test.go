// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

type notifyBody struct {
	Target string   `json:"target"`
	URLs   []string `json:"urls"`
}

func TestInitHasherPoolAndHash(t *testing.T) {
	InitHasherPool(testHashKey)
	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	require.NotEmpty(t, sum1)
	assert.Equal(t, sum1, sum2, "hash must be deterministic")

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	assert.Equal(t, h.Sum(nil), sum1)
}

func TestHash_MatchesHashString(t *testing.T) {
	InitHasherPool(testHashKey)

	body, err := json.Marshal(notifyBody{Target: "Production", URLs: []string{"/?eID=nr_sync&data=pages:1"}})
	require.NoError(t, err)

	assert.Equal(t, HashString(string(body), testHashKey), hex.EncodeToString(Hash(body)))
}

func TestHash_DifferentPayloads(t *testing.T) {
	InitHasherPool(testHashKey)

	first, _ := json.Marshal(notifyBody{Target: "Production"})
	second, _ := json.Marshal(notifyBody{Target: "Integration"})

	assert.NotEqual(t, Hash(first), Hash(second))
}

func TestHash_DifferentKeys(t *testing.T) {
	body := []byte(`{"target":"Production"}`)

	InitHasherPool("key-one")
	first := Hash(body)

	InitHasherPool("key-two")
	second := Hash(body)

	assert.NotEqual(t, first, second)
}

func TestHashString(t *testing.T) {
	tests := []struct {
		name string
		data string
		key  string
	}{
		{"empty data", "", "key"},
		{"empty key", "payload", ""},
		{"regular", "payload", "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mac := hmac.New(sha256.New, []byte(tt.key))
			mac.Write([]byte(tt.data))

			got := HashString(tt.data, tt.key)
			assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got)
			assert.Len(t, got, 64)
		})
	}
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGzipEncode(t *testing.T) {
	nonEncoded, err := ReadFile("../blizzard/TestData/realm-status.json")
	if !assert.Nil(t, err) {
		return
	}

	result, err := GzipEncode(nonEncoded)
	if !assert.Nil(t, err) {
		return
	}

	result, err = GzipDecode(result)
	if !assert.Nil(t, err) {
		return
	}

	if !assert.Equal(t, nonEncoded, result) {
		return
	}
}

func TestGzipDecodeFail(t *testing.T) {
	if _, err := GzipDecode([]byte("not gzipped")); !assert.NotNil(t, err) {
		return
	}
}

func TestReadFileFail(t *testing.T) {
	if _, err := ReadFile("./TestData/does-not-exist.json"); !assert.NotNil(t, err) {
		return
	}
}

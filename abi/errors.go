package abi

import "errors"

var (
	// ErrBufferTooSmall is returned by Encode when the output buffer
	// cannot hold the value's full encoding. Nothing is written in
	// that case.
	ErrBufferTooSmall = errors.New("abi: buffer too small")

	// Reserved for defensive checks by embedders. No core operation
	// raises these.
	ErrEmptyData = errors.New("abi: empty data")
	ErrBadType   = errors.New("abi: bad type")
	ErrBadSize   = errors.New("abi: bad size")
)

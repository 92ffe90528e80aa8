/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// detBlockSize is the number of keystream bytes produced per refill.
const detBlockSize = 512

// detStream is a math/rand/v2 Source producing the salsa20 keystream
// of a fixed key. Every refill uses the next nonce, so the stream
// never repeats within 2^64 refills.
type detStream struct {
	key   *[32]byte
	nonce uint64
	buf   []byte
	off   int
}

// NewDetSource returns a Source whose values are (deterministic)
// pseudo-random values from the salsa20 keystream determined by key.
// Two sources built from the same key produce the same values.
func NewDetSource(key *[32]byte) *Source {
	k := *key
	d := &detStream{
		key: &k,
		buf: make([]byte, detBlockSize),
		off: detBlockSize,
	}

	return newSource(d)
}

func (d *detStream) Uint64() uint64 {
	if d.off+8 > len(d.buf) {
		d.refill()
	}
	v := binary.LittleEndian.Uint64(d.buf[d.off : d.off+8])
	d.off += 8

	return v
}

func (d *detStream) refill() {
	in := make([]byte, len(d.buf)) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, d.nonce)
	d.nonce++

	salsa20.XORKeyStream(d.buf, in, nonce, d.key)
	d.off = 0
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/wramd/account"
)

// kinds of trace entry
const (
	TraceAction = "action"
	TraceInline = "inline"
	TraceNotify = "notify"
)

// TraceEntry - one step of a trigger
type TraceEntry struct {
	Depth    int          `json:"depth"`
	Kind     string       `json:"kind"`
	Receiver account.Name `json:"receiver"`
	Action   Action       `json:"action"`
}

// Receipt - the outcome of a trigger
type Receipt struct {
	ID        string         `json:"id"`
	Sequence  uint64         `json:"sequence"`
	Action    Action         `json:"action"`
	Signers   []account.Name `json:"signers"`
	Trace     []TraceEntry   `json:"trace"`
	Error     string         `json:"error,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Duration  time.Duration  `json:"duration"`
}

// Committed - true if the trigger's changes were stored
func (r *Receipt) Committed() bool {
	return "" == r.Error
}

// Count - number of trace entries of a kind
func (r *Receipt) Count(kind string) int {
	n := 0
	for _, e := range r.Trace {
		if kind == e.Kind {
			n += 1
		}
	}
	return n
}

type trigger struct {
	sequence uint64
	entry    Action
	signers  []account.Name
	started  time.Time
	trace    []TraceEntry
}

func (t *trigger) record(depth int, kind string, receiver account.Name, action Action) {
	t.trace = append(t.trace, TraceEntry{
		Depth:    depth,
		Kind:     kind,
		Receiver: receiver,
		Action:   action,
	})
}

// id = SHA3-256(sequence ++ for each entry: kind ++ receiver ++ action)
func (t *trigger) receipt(err error) *Receipt {
	digest := sha3.New256()
	seq := make([]byte, 8)
	binary.BigEndian.PutUint64(seq, t.sequence)
	digest.Write(seq)
	for _, e := range t.trace {
		digest.Write([]byte(e.Kind))
		digest.Write([]byte{0})
		digest.Write(e.Receiver.Bytes())
		digest.Write([]byte{0})
		digest.Write([]byte(e.Action.String()))
		digest.Write([]byte{0})
	}

	r := &Receipt{
		ID:        hex.EncodeToString(digest.Sum(nil)),
		Sequence:  t.sequence,
		Action:    t.entry,
		Signers:   t.signers,
		Trace:     t.trace,
		Timestamp: t.started.UTC(),
		Duration:  time.Since(t.started),
	}
	if nil != err {
		r.Error = err.Error()
	}
	return r
}

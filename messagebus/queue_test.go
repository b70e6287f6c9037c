// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/wramd/messagebus"
)

func TestQueue(t *testing.T) {
	messagebus.Bus.TestQueue.Drain()

	items := []messagebus.Message{
		{
			Command:    "c1",
			Parameters: []interface{}{1},
		},
		{
			Command:    "c2",
			Parameters: []interface{}{"two", 2},
		},
		{
			Command:    "c3",
			Parameters: nil,
		},
	}

	for _, item := range items {
		ok := messagebus.Bus.TestQueue.Send(item.Command, item.Parameters...)
		assert.True(t, ok, "send: %s", item.Command)
	}

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, item.Command, received.Command, "command")
		assert.Equal(t, len(item.Parameters), len(received.Parameters), "parameter count")
	}
}

func TestQueueFull(t *testing.T) {
	q := messagebus.Bus.TestQueue
	q.Drain()
	before := q.Dropped()

	sent := 0
	for i := 0; i < 1005; i += 1 {
		if q.Send("fill") {
			sent += 1
		}
	}
	assert.Equal(t, 1000, sent, "accepted")
	assert.Equal(t, before+5, q.Dropped(), "dropped")
	assert.Equal(t, 1000, q.Drain(), "drained")
}
